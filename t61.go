//go:build !asn1_no_dprc

package der

/*
t61.go exists for TeletexString (tag 20). Grounded on the teacher's
t61.go, including its "dprc" (deprecated) build tag: TeletexString is
carried for legacy interoperability only, same as the teacher's own
deprecation notice recommends UniversalString/BMPString/UTF8String
instead. This package places no alphabet restriction on its content
beyond the standard TLV/Length rules (§4.4 "...etc.").
*/
