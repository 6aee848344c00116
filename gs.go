//go:build !asn1_no_dprc

package der

/*
gs.go exists for GraphicString (tag 25). Grounded on the teacher's
gs.go and its "dprc" build tag; see t61.go for the same deprecation
rationale. No alphabet restriction beyond the TLV/Length rules.
*/
