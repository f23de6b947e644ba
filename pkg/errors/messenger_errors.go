package errors

import "fmt"

var (
	// Domain errors used across the usecase and repository layers.
	ErrUserNotFound           = NotFound("user not found")
	ErrConversationNotFound   = NotFound("conversation not found")
	ErrMessageContentEmpty    = InvalidArg("message content cannot be empty")
	ErrSenderEqualsReceiver   = InvalidArg("sender and receiver must be different users")
	ErrEmptyParticipantSet    = InvalidArg("a conversation needs at least two participants")
	ErrReceiverNotParticipant = InvalidArg("receiver is not a participant of the conversation")
	ErrInvalidBeforeTimestamp = InvalidArg("before timestamp must be set")
	ErrIndexCounterExhausted  = Internal("index counter allocation failed")
)

func ErrStoreUnavailable(cause error) error {
	return Wrap(CodeUnavailable, "store unavailable", cause)
}

// ErrConversationIndexUnresolved marks a send whose message row is durable but
// whose conversation index could not be read back for the response.
func ErrConversationIndexUnresolved(cause error) error {
	return Wrap(CodePartialWrite, "message stored but conversation index did not resolve", cause)
}

// ErrFeedFanoutPartial marks a send whose message row is durable but whose
// conversation feed update failed for one or more participants. The message is
// NOT lost; the listed feeds are stale until a reconciliation pass repairs them.
func ErrFeedFanoutPartial(failed []string, cause error) error {
	return Wrap(CodePartialWrite,
		fmt.Sprintf("message stored but feed update failed for users %v", failed),
		cause)
}
