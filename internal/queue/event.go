// Package queue defines the broker message payloads and the background
// consumer that appends received inquiries to logs/inquiry.log.
package queue

// InquiryReceivedEvent is published when a contact-form inquiry has been
// persisted. It carries enough information for downstream consumers to log
// or trigger analytics without querying the primary database.
type InquiryReceivedEvent struct {
	InquiryID  uint64 `json:"inquiry_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Country    string `json:"country"`
	ReceivedAt string `json:"received_at"`
}
