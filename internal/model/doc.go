// Package model defines the entity records served by the treasury API,
// the request shapes accepted at the HTTP boundary, and the closed status
// sets validated there. Records are stored and served as-is; optional
// attributes are pointer-typed so an omitted value serializes as an
// explicit null rather than a missing key.
package model
