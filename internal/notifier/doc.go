// Package notifier delivers the wrapper's start and end events.
//
// In dry-run or debug mode every event is printed to the output writer
// first. Outside dry-run mode the event is then handed to a Sender (the
// Datadog client in production).
//
// # Error policy
//
// Notify never decides whether a delivery failure is acceptable. It returns
// the Sender's error unchanged; IsValidation tells the caller whether the
// failure belongs to the class that the ignore-event-errors setting may
// swallow.
package notifier
