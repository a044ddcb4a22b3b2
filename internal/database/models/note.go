package models

type Note struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Important bool   `json:"important"`
}

// NoteInput is the accepted shape of a create request. An omitted
// "important" decodes as false.
type NoteInput struct {
	Content   string `json:"content"`
	Important bool   `json:"important"`
}

// SeedNotes returns the notes a fresh store starts with.
func SeedNotes() []Note {
	return []Note{
		{ID: "1", Content: "HTML is easy", Important: true},
		{ID: "2", Content: "Browser can execute only JavaScript", Important: false},
		{ID: "3", Content: "GET and POST are the most important methods of HTTP protocol", Important: true},
	}
}

type LoginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
