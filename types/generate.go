package types

//go:generate go run ../cmd/shapegen --model ../api/mediaconvert.json --out .
