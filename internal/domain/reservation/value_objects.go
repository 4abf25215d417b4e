package reservation

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinGuests        = 1
	DefaultMaxGuests = 20
	DefaultPhoneCode = "+49"
	maxNameLength    = 100
	maxNoteLength    = 1000
	minPhoneDigits   = 4
	maxPhoneDigits   = 15
)

var (
	ErrInvalidGuestCount = errors.New("guest count out of range")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrNoteTooLong       = errors.New("note too long")
)

var (
	phoneCodePattern   = regexp.MustCompile(`^\+[1-9][0-9]{0,3}$`)
	phoneNumberPattern = regexp.MustCompile(`^[0-9 ()/-]+$`)
)

type GuestCount struct {
	value int
}

func NewGuestCount(n, maxGuests int) (GuestCount, error) {
	if maxGuests < MinGuests {
		maxGuests = DefaultMaxGuests
	}
	if n < MinGuests || n > maxGuests {
		return GuestCount{}, ErrInvalidGuestCount
	}
	return GuestCount{value: n}, nil
}

func (g GuestCount) Int() int {
	return g.value
}

type Name struct {
	value string
}

func NewName(value string) (Name, error) {
	v := strings.TrimSpace(value)
	if v == "" || utf8.RuneCountInString(v) > maxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: v}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a dialling code plus a local number. An empty code means +49.
type Phone struct {
	code   string
	number string
}

func NewPhone(code, number string) (Phone, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		code = DefaultPhoneCode
	}
	if !phoneCodePattern.MatchString(code) {
		return Phone{}, ErrInvalidPhone
	}

	number = strings.TrimSpace(number)
	if !phoneNumberPattern.MatchString(number) {
		return Phone{}, ErrInvalidPhone
	}
	digits := 0
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < minPhoneDigits || digits > maxPhoneDigits {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{code: code, number: number}, nil
}

func (p Phone) Code() string   { return p.code }
func (p Phone) Number() string { return p.number }

func (p Phone) String() string {
	return p.code + " " + p.number
}

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	v := strings.TrimSpace(value)
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: v}, nil
}

func (e Email) String() string {
	return e.value
}

type Contact struct {
	FirstName Name
	LastName  Name
	Phone     Phone
	Email     Email
}

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	v := strings.TrimSpace(value)
	if utf8.RuneCountInString(v) > maxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: v}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
