// Package memory provides an in-process repository.Store used for local
// development and tests. It enforces the same unique keys and foreign keys
// as the SQL schema.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	apperrors "vetclinic/internal/errors"
	"vetclinic/internal/model"
	"vetclinic/internal/repository"
)

type data struct {
	clinics       *table[model.Clinic]
	veterinarians *table[model.Veterinarian]
	tutors        *table[model.Tutor]
	pets          *table[model.Pet]
	visits        *table[model.Visit]
	users         *table[model.User]
}

func newData() *data {
	return &data{
		clinics:       newTable[model.Clinic](),
		veterinarians: newTable[model.Veterinarian](),
		tutors:        newTable[model.Tutor](),
		pets:          newTable[model.Pet](),
		visits:        newTable[model.Visit](),
		users:         newTable[model.User](),
	}
}

func (d *data) clone() *data {
	return &data{
		clinics:       d.clinics.clone(),
		veterinarians: d.veterinarians.clone(),
		tutors:        d.tutors.clone(),
		pets:          d.pets.clone(),
		visits:        d.visits.clone(),
		users:         d.users.clone(),
	}
}

type state struct {
	mu   sync.Mutex
	data *data
}

// Store is a mutex-guarded in-memory implementation of repository.Store.
// A transaction holds the lock for its whole duration and restores a
// snapshot when it fails.
type Store struct {
	state *state
	inTx  bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{state: &state{data: newData()}}
}

// lock acquires the store lock unless the caller already runs inside a
// transaction, and returns the matching release function.
func (s *Store) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.state.mu.Lock()
	return s.state.mu.Unlock
}

func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.Store) error) error {
	if s.inTx {
		return fn(ctx, s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	snapshot := s.state.data.clone()
	if err := fn(ctx, &Store{state: s.state, inTx: true}); err != nil {
		s.state.data = snapshot
		return err
	}
	return nil
}

func missingParent(entity string, id uint) error {
	return apperrors.NotFound(entity, id)
}

func (s *Store) Clinics() repository.ClinicRepository {
	return &crud[model.Clinic]{
		store:  s,
		entity: "clinic",
		table:  func(d *data) *table[model.Clinic] { return d.clinics },
		id:     func(c *model.Clinic) *uint { return &c.ID },
		referenced: func(d *data, id uint) bool {
			for _, v := range d.veterinarians.rows {
				if v.ClinicID == id {
					return true
				}
			}
			return false
		},
	}
}

type veterinarianRepository struct {
	*crud[model.Veterinarian]
}

func (s *Store) Veterinarians() repository.VeterinarianRepository {
	return &veterinarianRepository{&crud[model.Veterinarian]{
		store:   s,
		entity:  "veterinarian",
		table:   func(d *data) *table[model.Veterinarian] { return d.veterinarians },
		id:      func(v *model.Veterinarian) *uint { return &v.ID },
		uniques: []uniqueKey[model.Veterinarian]{{field: "license_number", value: func(v *model.Veterinarian) string { return v.LicenseNumber }}},
		parents: func(d *data, v *model.Veterinarian) error {
			if _, ok := d.clinics.rows[v.ClinicID]; !ok {
				return missingParent("clinic", v.ClinicID)
			}
			return nil
		},
		referenced: func(d *data, id uint) bool {
			for _, v := range d.visits.rows {
				if v.VeterinarianID == id {
					return true
				}
			}
			return false
		},
	}}
}

func (r *veterinarianRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*model.Veterinarian, error) {
	return r.findOne(ctx, func(v *model.Veterinarian) bool { return v.LicenseNumber == licenseNumber })
}

func (r *veterinarianRepository) ListByClinic(ctx context.Context, clinicID uint) ([]model.Veterinarian, error) {
	return r.filter(ctx, func(v *model.Veterinarian) bool { return v.ClinicID == clinicID }, -1)
}

func (s *Store) Tutors() repository.TutorRepository {
	return &crud[model.Tutor]{
		store:  s,
		entity: "tutor",
		table:  func(d *data) *table[model.Tutor] { return d.tutors },
		id:     func(t *model.Tutor) *uint { return &t.ID },
		referenced: func(d *data, id uint) bool {
			for _, p := range d.pets.rows {
				if p.TutorID == id {
					return true
				}
			}
			return false
		},
	}
}

func (s *Store) Pets() repository.PetRepository {
	return &crud[model.Pet]{
		store:  s,
		entity: "pet",
		table:  func(d *data) *table[model.Pet] { return d.pets },
		id:     func(p *model.Pet) *uint { return &p.ID },
		parents: func(d *data, p *model.Pet) error {
			if _, ok := d.tutors.rows[p.TutorID]; !ok {
				return missingParent("tutor", p.TutorID)
			}
			return nil
		},
		referenced: func(d *data, id uint) bool {
			for _, v := range d.visits.rows {
				if v.PetID == id {
					return true
				}
			}
			return false
		},
	}
}

func (s *Store) Visits() repository.VisitRepository {
	return &crud[model.Visit]{
		store:  s,
		entity: "visit",
		table:  func(d *data) *table[model.Visit] { return d.visits },
		id:     func(v *model.Visit) *uint { return &v.ID },
		parents: func(d *data, v *model.Visit) error {
			if _, ok := d.pets.rows[v.PetID]; !ok {
				return missingParent("pet", v.PetID)
			}
			if _, ok := d.veterinarians.rows[v.VeterinarianID]; !ok {
				return missingParent("veterinarian", v.VeterinarianID)
			}
			return nil
		},
		touch: func(v *model.Visit, created bool) {
			if created && v.Timestamp.IsZero() {
				v.Timestamp = time.Now().UTC()
			}
		},
	}
}

type userRepository struct {
	*crud[model.User]
}

func (s *Store) Users() repository.UserRepository {
	return &userRepository{&crud[model.User]{
		store:  s,
		entity: "user",
		table:  func(d *data) *table[model.User] { return d.users },
		id:     func(u *model.User) *uint { return &u.ID },
		uniques: []uniqueKey[model.User]{
			{field: "username", value: func(u *model.User) string { return u.Username }},
			{field: "email", value: func(u *model.User) string { return strings.ToLower(u.Email) }},
		},
		touch: func(u *model.User, created bool) {
			now := time.Now().UTC()
			if created {
				u.CreatedAt = now
			}
			u.UpdatedAt = now
		},
	}}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, func(u *model.User) bool { return u.Username == username })
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, func(u *model.User) bool { return strings.EqualFold(u.Email, email) })
}

var _ repository.Store = (*Store)(nil)
