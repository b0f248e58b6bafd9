package movies

import "context"

type Service interface {
	SearchMovies(ctx context.Context, params SearchParams) ([]MovieSummary, error)
	GetMovie(ctx context.Context, id string) (Movie, error)
}

// Repository is the search gateway port. Implementations must be safe for
// concurrent use and must honor the compiled sort order; they report lookup
// misses as ErrNotFound.
type Repository interface {
	SearchMovies(ctx context.Context, query Query) ([]MovieSummary, error)
	GetMovie(ctx context.Context, id string) (Movie, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) SearchMovies(ctx context.Context, params SearchParams) ([]MovieSummary, error) {
	return uc.r.SearchMovies(ctx, Compile(params))
}

func (uc *Usecase) GetMovie(ctx context.Context, id string) (Movie, error) {
	return uc.r.GetMovie(ctx, id)
}
