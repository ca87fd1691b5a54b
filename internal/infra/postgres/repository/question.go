package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
)

type Transactor interface {
	WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// QuestionRepository reads the question bank from PostgreSQL.
type QuestionRepository struct {
	tx Transactor
}

func NewQuestionRepository(tx Transactor) *QuestionRepository {
	return &QuestionRepository{tx: tx}
}

type textRow struct {
	QuestionID int64
	Lang       string
	Text       string
}

type optionRow struct {
	QuestionID int64
	Lang       string
	Value      string
	IsCorrect  bool
}

// GetAll loads every question ordered by its position.
func (r *QuestionRepository) GetAll(ctx context.Context) ([]entities.Question, error) {
	var (
		ids     []int64
		texts   []textRow
		options []optionRow
	)

	err := r.tx.WithinReadOnlyTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error

		ids, err = queryQuestionIDs(ctx, tx)
		if err != nil {
			return err
		}

		texts, err = queryTexts(ctx, tx)
		if err != nil {
			return err
		}

		options, err = queryOptions(ctx, tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	return assembleQuestions(ids, texts, options)
}

func queryQuestionIDs(ctx context.Context, tx pgx.Tx) ([]int64, error) {
	query := `
		SELECT id
		FROM questions
		ORDER BY position, id
	`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan questions: %w", err)
	}

	return ids, nil
}

func queryTexts(ctx context.Context, tx pgx.Tx) ([]textRow, error) {
	query := `
		SELECT question_id, lang, text
		FROM question_texts
	`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query question texts: %w", err)
	}

	texts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (textRow, error) {
		var t textRow
		err := row.Scan(&t.QuestionID, &t.Lang, &t.Text)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan question texts: %w", err)
	}

	return texts, nil
}

func queryOptions(ctx context.Context, tx pgx.Tx) ([]optionRow, error) {
	query := `
		SELECT question_id, lang, value, is_correct
		FROM question_options
		ORDER BY question_id, lang, position
	`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query question options: %w", err)
	}

	options, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (optionRow, error) {
		var o optionRow
		err := row.Scan(&o.QuestionID, &o.Lang, &o.Value, &o.IsCorrect)
		return o, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan question options: %w", err)
	}

	return options, nil
}

// assembleQuestions joins the three result sets into bank-ordered questions.
// Options must arrive ordered by position within each question and language.
func assembleQuestions(ids []int64, texts []textRow, options []optionRow) ([]entities.Question, error) {
	index := make(map[int64]int, len(ids))
	questions := make([]entities.Question, len(ids))
	for i, id := range ids {
		index[id] = i
		questions[i] = entities.Question{
			ID:             i,
			Text:           make(map[entities.Language]string),
			Options:        make(map[entities.Language][]string),
			CorrectAnswers: make(map[entities.Language][]string),
		}
	}

	for _, t := range texts {
		i, ok := index[t.QuestionID]
		if !ok {
			continue
		}
		lang, err := entities.ParseLanguage(t.Lang)
		if err != nil {
			return nil, fmt.Errorf("question %d text: %w", t.QuestionID, err)
		}
		questions[i].Text[lang] = t.Text
	}

	for _, o := range options {
		i, ok := index[o.QuestionID]
		if !ok {
			continue
		}
		lang, err := entities.ParseLanguage(o.Lang)
		if err != nil {
			return nil, fmt.Errorf("question %d option: %w", o.QuestionID, err)
		}
		q := &questions[i]
		q.Options[lang] = append(q.Options[lang], o.Value)
		if o.IsCorrect {
			q.CorrectAnswers[lang] = append(q.CorrectAnswers[lang], o.Value)
		}
	}

	return questions, nil
}
