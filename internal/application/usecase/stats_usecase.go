package usecase

import (
	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// StatsUseCase métricas del panel administrativo.
type StatsUseCase struct {
	repo repository.BookRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.BookRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// AdminStats devuelve total de libros y de categorías distintas.
func (uc *StatsUseCase) AdminStats() (*dto.AdminStatsResponse, error) {
	totalBooks, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	categories, err := uc.repo.Categories()
	if err != nil {
		return nil, err
	}
	return &dto.AdminStatsResponse{
		TotalBooks:      totalBooks,
		TotalCategories: len(categories),
	}, nil
}
