package questions

import "time"

// Question is a client's message to the coach, optionally answered later.
type Question struct {
	ID         int        `json:"id"`
	ClientID   string     `json:"clientId"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	Answer     *string    `json:"answer,omitempty"`
	AnsweredAt *time.Time `json:"answeredAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (q Question) Answered() bool {
	return q.Answer != nil
}
