// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"places/internal/domain/entity"
	domainerrors "places/internal/domain/errors"
	"places/internal/domain/repository"
	"places/internal/errors"
	"places/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// placeRepository implements the repository.PlaceRepository interface.
type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &placeRepository{
		db: db,
	}
}

// CreatePlace persists a new place.
func (repo *placeRepository) CreatePlace(ctx context.Context, place *entity.Place) error {
	placeM := fromPlaceDomain(place)

	if err := repo.db.WithContext(ctx).Create(placeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPlaceAlreadyExists
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrPlaceValidation.WrapMessage(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create place")
	}

	return nil
}

// FindPlaceByID retrieves a place by its id.
func (repo *placeRepository) FindPlaceByID(ctx context.Context, id string) (*entity.Place, error) {
	var placeM model.PlaceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&placeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find place by ID")
	}

	return toPlaceDomain(&placeM), nil
}

// PlaceExists reports whether a row with the id is stored.
func (repo *placeRepository) PlaceExists(ctx context.Context, id string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PlaceModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check place existence")
	}

	return count > 0, nil
}

// UpdatePlace writes the supplied columns and updated_at.
func (repo *placeRepository) UpdatePlace(ctx context.Context, id string, update *repository.PlaceUpdate) error {
	if update == nil {
		return errors.New("place update is nil")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PlaceModel{}).
		Where("id = ?", id).
		Updates(updateColumns(update))

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrPlaceValidation.WrapMessage(result.Error.Error())
		}

		return errors.Wrap(result.Error, "failed to update place")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlaceNotFound
	}

	return nil
}

// DeletePlace removes a place by its id.
func (repo *placeRepository) DeletePlace(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlaceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete place")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlaceNotFound
	}

	return nil
}

// FindAllPlaces returns every place ordered by id.
func (repo *placeRepository) FindAllPlaces(ctx context.Context) ([]*entity.Place, error) {
	var placeModels []*model.PlaceModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&placeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find places")
	}

	return toPlaceDomains(placeModels), nil
}

// FindPlacesPage counts the matching rows first and only fetches the page when
// there is something to fetch. A page past the end is clamped to the last page.
func (repo *placeRepository) FindPlacesPage(ctx context.Context, query repository.PageQuery) ([]*entity.Place, int64, error) {
	var total int64

	if err := applyPageFilters(repo.db.WithContext(ctx).Model(&model.PlaceModel{}), query).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count places")
	}

	if total == 0 {
		return []*entity.Place{}, 0, nil
	}

	query.Page = repository.ClampPage(query.Page, total, query.PageSize)

	var placeModels []*model.PlaceModel
	if err := applyPageFilters(repo.db.WithContext(ctx), query).
		Order(pageOrder(query)).
		Offset(query.Offset()).
		Limit(query.PageSize).
		Find(&placeModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find places page")
	}

	return toPlaceDomains(placeModels), total, nil
}

// CountPlaces returns the number of stored places.
func (repo *placeRepository) CountPlaces(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PlaceModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count places")
	}

	return count, nil
}

// applyPageFilters adds the exact type filter and the case-insensitive search,
// OR-ed across the search columns.
// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func applyPageFilters(db *gorm.DB, query repository.PageQuery) *gorm.DB {
	if query.Type != "" {
		db = db.Where("types = ?", query.Type)
	}

	if query.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(query.Search)) + "%"
		conditions := make([]string, 0, len(repository.SearchColumns))
		args := make([]any, 0, len(repository.SearchColumns))
		for _, column := range repository.SearchColumns {
			conditions = append(conditions, "LOWER("+column+") LIKE ? ESCAPE '\\'")
			args = append(args, pattern)
		}
		db = db.Where("("+strings.Join(conditions, " OR ")+")", args...)
	}

	return db
}

// pageOrder builds ORDER BY from an allow-listed column; id breaks ties so pages are stable.
func pageOrder(query repository.PageQuery) clause.OrderBy {
	desc := query.SortOrder == repository.SortOrderDesc
	columns := []clause.OrderByColumn{
		{Column: clause.Column{Name: query.SortBy}, Desc: desc},
	}
	if query.SortBy != repository.DefaultSortColumn {
		columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: repository.DefaultSortColumn}})
	}

	return clause.OrderBy{Columns: columns}
}

func updateColumns(update *repository.PlaceUpdate) map[string]any {
	columns := map[string]any{
		"updated_at": update.UpdatedAt,
	}
	if update.Latitude != nil {
		columns["latitude"] = *update.Latitude
	}
	if update.Longitude != nil {
		columns["longitude"] = *update.Longitude
	}
	if update.Types != nil {
		columns["types"] = *update.Types
	}
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Address != nil {
		columns["address"] = *update.Address
	}
	if update.Pincode != nil {
		columns["pincode"] = *update.Pincode
	}
	if update.Rating != nil {
		columns["rating"] = *update.Rating
	}
	if update.Followers != nil {
		columns["followers"] = *update.Followers
	}
	if update.Country != nil {
		columns["country"] = *update.Country
	}

	return columns
}

// --- Mapper Functions ---

// toPlaceDomain converts a GORM PlaceModel to a domain Place entity.
func toPlaceDomain(data *model.PlaceModel) *entity.Place {
	if data == nil {
		return nil
	}

	return &entity.Place{
		ID:        data.ID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Types:     data.Types,
		Name:      data.Name,
		Address:   data.Address,
		Pincode:   data.Pincode,
		Rating:    data.Rating,
		Followers: data.Followers,
		Country:   data.Country,
		CreatedAt: data.CreatedAt.UTC(),
		UpdatedAt: data.UpdatedAt.UTC(),
	}
}

func toPlaceDomains(models []*model.PlaceModel) []*entity.Place {
	places := make([]*entity.Place, 0, len(models))
	for _, placeM := range models {
		places = append(places, toPlaceDomain(placeM))
	}

	return places
}

// fromPlaceDomain converts a domain Place entity to a GORM PlaceModel.
func fromPlaceDomain(data *entity.Place) *model.PlaceModel {
	if data == nil {
		return nil
	}

	return &model.PlaceModel{
		ID:        data.ID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Types:     data.Types,
		Name:      data.Name,
		Address:   data.Address,
		Pincode:   data.Pincode,
		Rating:    data.Rating,
		Followers: data.Followers,
		Country:   data.Country,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
