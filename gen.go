//go:build !asn1_no_dprc

package der

/*
gen.go exists for GeneralString (tag 27). Grounded on the teacher's
gen.go and its "dprc" build tag; see t61.go for the same deprecation
rationale. No alphabet restriction beyond the TLV/Length rules.
*/
