// Package goprop provides:
//
//   - Type-safe property encoding into a JSON-like document (Encoder/Sink)
//   - Deterministic canonical kind resolution across ambiguous numeric widths
//   - A validation pipeline with dotted-path Issues that aggregate instead of aborting
//   - Pluggable sink ordering (unordered, insertion, reverse, sorted)
//
// Design policy:
//   - Keep only public APIs in the root package; the root depends on the standard library alone.
//   - Place rule constructors under rules/, declarative rule config under ruleset/,
//     field registration under bind/, and the CLI under cmd/goprop.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	e := goprop.NewEncoder(goprop.EncodeOpt{Order: goprop.OrderInsertion})
//	user.VisitProperties(e)
//	doc, err := e.StrictDocument()
//
// or, for one-shot encoding:
//
//	doc, err := goprop.Marshal(user)
package goprop
