// Package transport models the fleet's vehicles as a tagged union: a Kind tag
// (Road, Rail, Air) plus the tariff and speed every kind shares.
//
// Eligibility for a route is the pure function CanOperate(kind, origin, destination).
// It must be evaluated per order because city weather changes between orders.
package transport
