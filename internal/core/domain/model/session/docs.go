// Package session models the lightweight customer sign-in used by the
// storefront. There is no server-side identity provider: a session is just a
// validated, normalized email remembered between visits.
package session
