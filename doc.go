// Package wordgrid is a small toolkit for finding words in character grids.
//
// 🚀 What is in wordgrid?
//
//	• grid/      : immutable, validated R×C character grid (up to 64×64)
//	• wordfinder/: counts horizontal and vertical occurrences of a word
//	                stream and ranks the ten most frequent
//	• render/    : console drawing of a grid and of ranked matches
//	• cmd/wordfinder: demo driver configured from the environment
//
// Quick ASCII example:
//
//	┌─┬─┬─┐
//	│a│b│c│      "adg" reads down column 0,
//	├─┼─┼─┤      "def" reads along row 1.
//	│d│e│f│
//	├─┼─┼─┤
//	│g│h│i│
//	└─┴─┴─┘
//
//	go get github.com/katalvlaran/wordgrid/wordfinder
package wordgrid
