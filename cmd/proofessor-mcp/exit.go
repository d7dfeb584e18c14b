package main

type exitError struct {
	code int
}

func (e exitError) Error() string {
	return "exit status"
}

// exitSilent ends the process with code without logging a fatal error.
func exitSilent(code int) error {
	return exitError{code: code}
}
