package domain

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Go Basics", "go-basics"},
		{"  SQL  &  Databases!  ", "sql-databases"},
		{"C++", "c"},
		{"already-a-slug", "already-a-slug"},
		{"123 Go", "123-go"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTopicGuide(t *testing.T) {
	topic := &Topic{
		Title:       "Go Basics",
		Slug:        "go-basics",
		Stream:      "programming",
		Explanation: "An introduction.",
		Tasks:       []Task{{Title: "Hello", Description: "Print hello", Difficulty: DifficultyBeginner, Hint: "fmt.Println"}},
	}

	guide := topic.Guide()
	if guide.Title != topic.Title {
		t.Errorf("Expected title %q, got %q", topic.Title, guide.Title)
	}
	if len(guide.Tasks) != 1 {
		t.Fatalf("Expected 1 task, got %d", len(guide.Tasks))
	}
	if guide.Tasks[0].Difficulty != DifficultyBeginner {
		t.Errorf("Expected beginner difficulty, got %q", guide.Tasks[0].Difficulty)
	}
}
