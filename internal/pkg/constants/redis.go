package constants

// Redis key formats
const (
	KeyUserOTP = "user:otp:%s" // Format: user:otp:{email}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{route}:{ip}
)
