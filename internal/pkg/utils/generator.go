package utils

import "github.com/google/uuid"

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateChatSessionID() string {
	return uuid.NewString()
}
