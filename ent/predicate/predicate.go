// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// CheckoutSession is the predicate function for checkoutsession builders.
type CheckoutSession func(*sql.Selector)

// Flag is the predicate function for flag builders.
type Flag func(*sql.Selector)

// OrgResponse is the predicate function for orgresponse builders.
type OrgResponse func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)

// Rating is the predicate function for rating builders.
type Rating func(*sql.Selector)

// RefreshToken is the predicate function for refreshtoken builders.
type RefreshToken func(*sql.Selector)

// Review is the predicate function for review builders.
type Review func(*sql.Selector)

// Subscription is the predicate function for subscription builders.
type Subscription func(*sql.Selector)

// SubscriptionTransaction is the predicate function for subscriptiontransaction builders.
type SubscriptionTransaction func(*sql.Selector)

// Team is the predicate function for team builders.
type Team func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
