package mail

import (
	"fmt"
	"net/smtp"
	"strings"
)

// loginAuth implements the LOGIN SMTP auth mechanism, which the Office 365
// submission endpoint requires; the standard library only ships PLAIN and
// CRAM-MD5.
type loginAuth struct {
	username string
	password string
	host     string
}

func (a *loginAuth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	if server.Name != a.host {
		return "", nil, fmt.Errorf("unexpected server name %s", server.Name)
	}
	if !server.TLS {
		return "", nil, fmt.Errorf("refusing LOGIN auth without TLS")
	}
	return "LOGIN", nil, nil
}

func (a *loginAuth) Next(fromServer []byte, more bool) ([]byte, error) {
	if more {
		switch strings.ToLower(strings.TrimSpace(string(fromServer))) {
		case "username:", "user:":
			return []byte(a.username), nil
		case "password:", "pass:":
			return []byte(a.password), nil
		default:
			return nil, fmt.Errorf("unexpected login challenge: %s", string(fromServer))
		}
	}
	return nil, nil
}
