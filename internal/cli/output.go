package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		fmt.Printf("Username: %s\n", v.Username)
	case AuthResult:
		fmt.Printf("Logged in as %s\n", v.Username)
	case WantList:
		o.printWantList(v)
	case []Destination:
		o.printDestinations(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printWantList(list WantList) {
	if len(list.Items) == 0 {
		fmt.Println("Your want-to-go list is empty.")
		return
	}
	fmt.Println("Want-to-go list:")
	for _, d := range list.Items {
		fmt.Printf("  %-12s %s\n", d.Name, d.URL)
	}
}

func (o *Output) printDestinations(dests []Destination) {
	fmt.Println("Destinations:")
	for _, d := range dests {
		fmt.Printf("  %-12s %-10s %s\n", d.Name, d.Category, d.Code)
	}
}

// User response type (matches API)
type User struct {
	Username string `json:"username"`
}

// AuthResult combines username and token
type AuthResult struct {
	Username     string `json:"username"`
	SessionToken string `json:"session_token"`
}

// Destination response type
type Destination struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// WantList response type
type WantList struct {
	Items []Destination `json:"items"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}
