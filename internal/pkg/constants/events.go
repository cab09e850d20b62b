package constants

// Default NSQ topics for domain events
const (
	TopicLoanDecided    = "loan.decided"
	TopicQueryResponded = "query.responded"

	ChannelNotifier = "notifier"
)
