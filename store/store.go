package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const maxRecentMovies = 8

// Contact is the name/email pair last used on a successful reservation,
// kept only to prefill the next confirmation form. The backend remains
// the source of truth for reservations themselves.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RecentMovie struct {
	Id    int    `json:"id"`
	Title string `json:"title"`
}

type movieHistory struct {
	Movies []RecentMovie `json:"movies"`
}

func LoadContact() (Contact, error) {
	path, err := configPath("contact.json")
	if err != nil {
		return Contact{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Contact{}, nil
		}
		return Contact{}, err
	}

	var contact Contact
	if err := json.Unmarshal(data, &contact); err != nil {
		return Contact{}, errors.New("invalid contact format")
	}
	return contact, nil
}

func RememberContact(contact Contact) error {
	if strings.TrimSpace(contact.Name) == "" || strings.TrimSpace(contact.Email) == "" {
		return errors.New("name and email are required")
	}
	path, err := configPath("contact.json")
	if err != nil {
		return err
	}
	return writeJSON(path, contact)
}

func LoadRecentMovies() ([]RecentMovie, error) {
	path, err := configPath("movies.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var history movieHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.New("invalid movie history format")
	}
	return history.Movies, nil
}

// RememberMovie moves the movie to the front of the recent list,
// dropping entries past the cap.
func RememberMovie(id int, title string) error {
	if id <= 0 {
		return errors.New("movie id is required")
	}
	history, _ := LoadRecentMovies()
	next := []RecentMovie{{Id: id, Title: title}}

	for _, existing := range history {
		if existing.Id == id {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentMovies {
			break
		}
	}

	path, err := configPath("movies.json")
	if err != nil {
		return err
	}
	return writeJSON(path, movieHistory{Movies: next})
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cineplus-cli", name), nil
}
