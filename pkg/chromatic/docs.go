// Package chromatic implements the perceptual color metrics the scorer is
// built on: the CIEDE2000 color difference (Sharma, Wu & Dalal 2005) and
// circular hue distance. CIEDE2000 is the only distance used for scoring;
// Euclidean Lab distance understates differences in saturated regions and is
// deliberately absent.
package chromatic
