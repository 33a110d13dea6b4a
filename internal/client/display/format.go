// FILE: reversi/internal/client/display/format.go
package display

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PrettyPrintJSON prints formatted JSON
func PrettyPrintJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%sError formatting JSON: %s%s\n", Red, err.Error(), Reset)
		return
	}
	fmt.Println(string(data))
}

// Stars renders a 1-5 star rating, e.g. "★★★☆☆"
func Stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return Yellow + strings.Repeat("★", n) + strings.Repeat("☆", 5-n) + Reset
}
