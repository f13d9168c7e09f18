package index

import (
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/LeJamon/goXRPLhash/internal/codec"
	"github.com/LeJamon/goXRPLhash/internal/core/ledger/keylet"
)

// ErrInvalidInput is wrapped by every field validation error.
var ErrInvalidInput = errors.New("invalid input")

var (
	hex24 = regexp.MustCompile(`^[0-9A-F]{24}$`)
	hex40 = regexp.MustCompile(`^[0-9A-F]{40}$`)
	hex48 = regexp.MustCompile(`^[0-9A-F]{48}$`)
	hex64 = regexp.MustCompile(`^[0-9A-F]{64}$`)
)

// accountID decodes a classic address field.
func accountID(field, address string) ([20]byte, error) {
	id, err := codec.DecodeAccountID(address)
	if err != nil {
		return id, fmt.Errorf("%w: %s: %v", ErrInvalidInput, field, err)
	}
	return id, nil
}

// normalizeHex strips an optional 0x prefix and upper-cases s.
func normalizeHex(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	return strings.ToUpper(s)
}

// fixedHex validates and decodes a fixed-length hex field.
func fixedHex(field, value string, re *regexp.Regexp) ([]byte, error) {
	v := normalizeHex(value)
	if !re.MatchString(v) {
		return nil, fmt.Errorf("%w: %s must be %s, got %q", ErrInvalidInput, field, describe(re), value)
	}
	return hex.DecodeString(v)
}

func describe(re *regexp.Regexp) string {
	switch re {
	case hex24:
		return "24 hex characters"
	case hex40:
		return "40 hex characters"
	case hex48:
		return "48 hex characters"
	default:
		return "64 hex characters"
	}
}

func hash256(field, value string) ([32]byte, error) {
	var out [32]byte
	b, err := fixedHex(field, value, hex64)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// currencyCode encodes a currency as its 160-bit form. "XRP" is all zeros,
// 40 hex characters pass through and any other three-character code is an
// ISO-style code placed at bytes 12 to 14.
func currencyCode(field, currency string) ([20]byte, error) {
	var out [20]byte
	if currency == "XRP" {
		return out, nil
	}
	if v := normalizeHex(currency); hex40.MatchString(v) {
		b, _ := hex.DecodeString(v)
		copy(out[:], b)
		return out, nil
	}
	if utf8.RuneCountInString(currency) == 3 {
		i := 12
		for _, r := range currency {
			out[i] = byte(r & 0xFF)
			i++
		}
		return out, nil
	}
	return out, fmt.Errorf("%w: %s must be XRP, a 3-character code or 40 hex characters, got %q", ErrInvalidInput, field, currency)
}

// Asset is a currency and, for anything but XRP, its issuer address.
type Asset struct {
	Currency string
	Issuer   string
}

func (a Asset) issue(field string) (keylet.Issue, error) {
	var issue keylet.Issue
	cur, err := currencyCode(field+".currency", a.Currency)
	if err != nil {
		return issue, err
	}
	issue.Currency = cur
	if cur == ([20]byte{}) {
		if a.Issuer != "" {
			return issue, fmt.Errorf("%w: %s.issuer must be empty for XRP", ErrInvalidInput, field)
		}
		return issue, nil
	}
	if issue.Account, err = accountID(field+".issuer", a.Issuer); err != nil {
		return issue, err
	}
	return issue, nil
}

// Bridge describes an XChain bridge with door addresses and bridged assets.
type Bridge struct {
	LockingChainDoor  string
	LockingChainIssue Asset
	IssuingChainDoor  string
	IssuingChainIssue Asset
}

func (b Bridge) keylet() (keylet.Bridge, error) {
	var out keylet.Bridge
	var err error
	if out.LockingChainDoor, err = accountID("LockingChainDoor", b.LockingChainDoor); err != nil {
		return out, err
	}
	if out.LockingChainIssue, err = b.LockingChainIssue.issue("LockingChainIssue"); err != nil {
		return out, err
	}
	if out.IssuingChainDoor, err = accountID("IssuingChainDoor", b.IssuingChainDoor); err != nil {
		return out, err
	}
	if out.IssuingChainIssue, err = b.IssuingChainIssue.issue("IssuingChainIssue"); err != nil {
		return out, err
	}
	return out, nil
}

// maxCredentialTypeLength is the longest credential type, in bytes.
const maxCredentialTypeLength = 64

func credentialTypeBytes(value string) ([]byte, error) {
	v := normalizeHex(value)
	b, err := hex.DecodeString(v)
	if err != nil || len(b) == 0 || len(b) > maxCredentialTypeLength {
		return nil, fmt.Errorf("%w: credentialType must be 1 to %d bytes of hex, got %q",
			ErrInvalidInput, maxCredentialTypeLength, value)
	}
	return b, nil
}
