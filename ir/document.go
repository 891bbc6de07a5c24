package ir

// Document is the result of parsing one file: optional APP and STYLE
// property maps and the questions in declaration order.
type Document struct {
	App       *PropertyMap
	Style     *PropertyMap
	Questions []*Question
}

// Question is a QUESTION block. ID and Type come from the block header and
// are never stored in Props.
type Question struct {
	ID    string
	Type  string
	Props *PropertyMap
}

func NewDocument() *Document {
	return &Document{Questions: []*Question{}}
}

func NewQuestion(id, typ string) *Question {
	return &Question{ID: id, Type: typ, Props: NewPropertyMap()}
}

// Question returns the first question with the given id.
func (d *Document) Question(id string) *Question {
	for _, q := range d.Questions {
		if q.ID == id {
			return q
		}
	}
	return nil
}

func (d *Document) Clone() *Document {
	res := &Document{
		App:       d.App.Clone(),
		Style:     d.Style.Clone(),
		Questions: make([]*Question, len(d.Questions)),
	}
	for i, q := range d.Questions {
		res.Questions[i] = q.Clone()
	}
	return res
}

func (q *Question) Clone() *Question {
	return &Question{ID: q.ID, Type: q.Type, Props: q.Props.Clone()}
}

// OrderLike restores the key order of ref onto d, matching questions by id.
func (d *Document) OrderLike(ref *Document) {
	d.App.OrderLike(ref.App)
	d.Style.OrderLike(ref.Style)
	for _, q := range d.Questions {
		if rq := ref.Question(q.ID); rq != nil {
			q.Props.OrderLike(rq.Props)
		}
	}
}

// KeepBareWords turns strings of d back into bare words where ref holds a
// bare word with the same text at the same place, matching questions by id.
// It undoes the coercion of a round trip through a form without bare words.
func (d *Document) KeepBareWords(ref *Document) {
	d.App.KeepBareWords(ref.App)
	d.Style.KeepBareWords(ref.Style)
	for _, q := range d.Questions {
		if rq := ref.Question(q.ID); rq != nil {
			q.Props.KeepBareWords(rq.Props)
		}
	}
}
