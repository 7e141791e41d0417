// Package model holds the BSON documents stored in MongoDB.
// Each document type names the collection it lives in.
package model

// Collection names.
const (
	UsersCollection         = "users"
	EventsCollection        = "events"
	OrganizationsCollection = "organizations"
	RegistrationsCollection = "registrations"
	ConnectionsCollection   = "connections"
	SubscriptionsCollection = "subscriptions"
	NotificationsCollection = "notifications"
	BadgesCollection        = "badges"
	BadgeClaimsCollection   = "badge_claims"
	FeedbackCollection      = "feedback"
	DevicesCollection       = "user_devices"
	OutboxCollection        = "outbox"
)
