package rpc

import "strconv"

// BuildURL returns URL of endpoint on given host and port. Host and port are
// not validated, malformed values are rejected later by the HTTP client.
func BuildURL(host string, port int, endpoint string) string {
	return "https://" + host + ":" + strconv.Itoa(port) + "/" + endpoint
}
