package interviews

import "context"

type Repo interface {
	Add(ctx context.Context, exp Experience) error
	List(ctx context.Context) ([]Experience, error)
}
