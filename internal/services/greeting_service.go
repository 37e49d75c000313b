package services

import (
	"encoding/json"
	"fmt"

	"funcapp-api/internal/models"
)

type greetingService struct{}

// NewGreetingService creates a new greeting service
func NewGreetingService() GreetingService {
	return &greetingService{}
}

func (s *greetingService) ResolveName(queryName string, body []byte) string {
	if queryName != "" {
		return queryName
	}

	// A body that is not a JSON object with a string name counts as no name
	var req models.GreetingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return ""
	}
	return req.Name
}

func (s *greetingService) Greet(name string) string {
	if name == "" {
		return models.DefaultGreeting
	}
	return fmt.Sprintf(models.GreetingTemplate, name)
}
