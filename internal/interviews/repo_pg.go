package interviews

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Add(ctx context.Context, exp Experience) error {
	const query = `
INSERT INTO interview_experiences (id, company, role, experience, questions, user_name, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		exp.ID,
		exp.Company,
		exp.Role,
		exp.Experience,
		exp.Questions,
		exp.User,
		exp.CreatedAt,
	)
	return err
}

func (r *PGRepo) List(ctx context.Context) ([]Experience, error) {
	const query = `
SELECT id, company, role, experience, questions, user_name, created_at
FROM interview_experiences
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Experience{}
	for rows.Next() {
		var exp Experience
		if err := rows.Scan(
			&exp.ID,
			&exp.Company,
			&exp.Role,
			&exp.Experience,
			&exp.Questions,
			&exp.User,
			&exp.CreatedAt,
		); err != nil {
			return nil, err
		}
		exp.Date = exp.CreatedAt.Format("2006-01-02")
		out = append(out, exp)
	}
	return out, rows.Err()
}
