// Package exitcode defines the process exit status of taskcal.
package exitcode

import "strconv"

// Process exit codes. Scripts depend on these values.
const (
	Success      = 0 // command completed
	UserError    = 1 // bad arguments, unknown list or task, invalid title or date
	AuthError    = 2 // missing or unusable Google credentials
	BackendError = 3 // store or Google API failure
)

var names = map[int]string{
	Success:      "success",
	UserError:    "user error",
	AuthError:    "auth error",
	BackendError: "backend error",
}

// Name returns a label for code for use in logs.
func Name(code int) string {
	if n, ok := names[code]; ok {
		return n
	}
	return "exit " + strconv.Itoa(code)
}
