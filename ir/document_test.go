package ir

import "testing"

func TestDocumentCloneEqual(t *testing.T) {
	d := NewDocument()
	d.App = PropertyMapOf("name", FromString("Test"), "group_id", FromInt(5))
	q := NewQuestion("q1", "multiple_choice")
	q.Props.Set("points", FromInt(10))
	d.Questions = append(d.Questions, q)

	c := d.Clone()
	if !d.Equal(c) {
		t.Fatalf("clone differs")
	}
	if d.Question("q1") != q || c.Question("q1") == q {
		t.Errorf("question lookup returned the wrong instance")
	}
	if d.Question("missing") != nil {
		t.Errorf("found missing question")
	}

	c.Questions[0].Type = "short_answer"
	if d.Equal(c) {
		t.Errorf("type change not detected")
	}
	c = d.Clone()
	c.Style = NewPropertyMap()
	if d.Equal(c) {
		t.Errorf("empty style must differ from absent style")
	}
}
