package repositories

import (
	"errors"
	"strings"

	"alumnihub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrAchievementNotFound = errors.New("achievement not found")
)

// ProfileSearchCriteria is the validated, typed form of a search
// filter. Every field ends up as a bound query parameter; raw caller
// text never reaches the SQL string.
type ProfileSearchCriteria struct {
	YearFrom *int
	YearTo   *int
	Major    string
	Location string
	Employer string
	Tag      string
	Offset   int
	Limit    int
}

type ProfileRepository interface {
	Create(db *gorm.DB, profile *models.AlumniProfile) error
	FindByUserID(db *gorm.DB, userID string) (*models.AlumniProfile, error)
	FindByID(db *gorm.DB, id string) (*models.AlumniProfile, error)
	Update(db *gorm.DB, profile *models.AlumniProfile) error
	ReplaceTags(db *gorm.DB, profileID string, tags []string) error
	Search(db *gorm.DB, criteria ProfileSearchCriteria) ([]models.AlumniProfile, int64, error)

	CreateAchievement(db *gorm.DB, achievement *models.Achievement) error
	FindAchievement(db *gorm.DB, id string) (*models.Achievement, error)
	DeleteAchievement(db *gorm.DB, id string) error
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(db *gorm.DB, profile *models.AlumniProfile) error {
	return db.Create(profile).Error
}

func (r *profileRepository) FindByUserID(db *gorm.DB, userID string) (*models.AlumniProfile, error) {
	var profile models.AlumniProfile
	err := db.Preload("Tags").Preload("Achievements").
		First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByID(db *gorm.DB, id string) (*models.AlumniProfile, error) {
	var profile models.AlumniProfile
	err := db.Preload("Tags").Preload("Achievements").
		First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(db *gorm.DB, profile *models.AlumniProfile) error {
	result := db.Model(profile).Updates(map[string]interface{}{
		"first_name":      profile.FirstName,
		"last_name":       profile.LastName,
		"graduation_year": profile.GraduationYear,
		"major":           profile.Major,
		"industry":        profile.Industry,
		"employer":        profile.Employer,
		"location":        profile.Location,
		"bio":             profile.Bio,
		"avatar_url":      profile.AvatarURL,
		"phone_number":    profile.PhoneNumber,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// ReplaceTags swaps the full tag set. Tags are stored lowercased so the
// search predicate is a plain equality match.
func (r *profileRepository) ReplaceTags(db *gorm.DB, profileID string, tags []string) error {
	if err := db.Where("profile_id = ?", profileID).Delete(&models.ProfileTag{}).Error; err != nil {
		return err
	}
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		if err := db.Create(&models.ProfileTag{ProfileID: profileID, Tag: tag}).Error; err != nil {
			return err
		}
	}
	return nil
}

// Search builds the filtered query from the typed criteria. Ordering is
// fixed (graduation year descending, id ascending) so identical queries
// paginate identically while the data is unchanged.
func (r *profileRepository) Search(db *gorm.DB, criteria ProfileSearchCriteria) ([]models.AlumniProfile, int64, error) {
	query := db.Model(&models.AlumniProfile{})

	if criteria.YearFrom != nil {
		query = query.Where("graduation_year >= ?", *criteria.YearFrom)
	}
	if criteria.YearTo != nil {
		query = query.Where("graduation_year <= ?", *criteria.YearTo)
	}
	if criteria.Major != "" {
		query = query.Where(`LOWER(major) LIKE ? ESCAPE '\'`, containsPattern(criteria.Major))
	}
	if criteria.Location != "" {
		query = query.Where(`LOWER(location) LIKE ? ESCAPE '\'`, containsPattern(criteria.Location))
	}
	if criteria.Employer != "" {
		query = query.Where(`LOWER(employer) LIKE ? ESCAPE '\'`, containsPattern(criteria.Employer))
	}
	if criteria.Tag != "" {
		query = query.Joins(
			"JOIN profile_tags ON profile_tags.profile_id = alumni_profiles.id AND profile_tags.tag = ?",
			strings.ToLower(criteria.Tag),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []models.AlumniProfile
	err := query.Preload("Tags").
		Order("graduation_year DESC, alumni_profiles.id ASC").
		Limit(criteria.Limit).Offset(criteria.Offset).
		Find(&profiles).Error

	return profiles, total, err
}

// containsPattern builds a case-insensitive substring pattern. The LIKE
// wildcards in the caller's own text are escaped so they stay literal.
func containsPattern(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(value))
	return "%" + escaped + "%"
}

func (r *profileRepository) CreateAchievement(db *gorm.DB, achievement *models.Achievement) error {
	return db.Create(achievement).Error
}

func (r *profileRepository) FindAchievement(db *gorm.DB, id string) (*models.Achievement, error) {
	var achievement models.Achievement
	if err := db.First(&achievement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAchievementNotFound
		}
		return nil, err
	}
	return &achievement, nil
}

func (r *profileRepository) DeleteAchievement(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Achievement{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAchievementNotFound
	}
	return nil
}
