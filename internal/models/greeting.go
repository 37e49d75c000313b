package models

// Greeting messages returned by the http_trigger function
const (
	GreetingTemplate = "Hello, %s. This HTTP triggered function executed successfully."
	DefaultGreeting  = "This HTTP triggered function executed successfully. " +
		"Pass a name in the query string or in the request body for a personalized response."
)

// GreetingRequest is the optional JSON body of the greeting endpoint
type GreetingRequest struct {
	Name string `json:"name"`
}
