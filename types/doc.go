// Package types is the AWS Elemental MediaConvert data model: one immutable
// record type per request, response, or nested settings shape, and one closed
// string type per enumeration.
//
// Records are built with their builder and are never modified afterwards:
//
//	ad := types.NewAudioDescriptionBuilder().
//		WithLanguageCode(types.LanguageCodeEng).
//		WithStreamName("Director commentary").
//		Build()
//
// Every field is an opt.Optional, so an unset field is distinct from a zero
// value. Equal, HashCode and String are defined over the present fields in
// declaration order.
//
// Construction never checks documented constraints. Call Validate to check
// required fields, numeric ranges, patterns, and lengths before handing a
// request to a transport. Raw strings become enumeration values only through
// the Parse functions or a Decode function at the boundary.
//
// Most of this package is generated by cmd/shapegen from api/mediaconvert.json.
package types
