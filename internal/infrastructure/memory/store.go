// Package memory implementa los puertos de repositorio en memoria.
// Lo usan los tests de aplicación y HTTP; es seguro para uso concurrente.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
	"github.com/jhoicas/Despensa-api/internal/domain/week"
)

// Store guarda todas las entidades bajo un único mutex.
type Store struct {
	mu sync.RWMutex

	users       map[string]entity.User
	households  map[string]entity.Household
	members     map[string]map[string]entity.HouseholdMember // householdID → userID → miembro
	ingredients map[string]entity.Ingredient
	recipes     map[string]entity.Recipe
	mealTypes   map[string]entity.MealType
	plans       map[string]entity.MealPlan
	pantry      map[string]entity.PantryItem
	lists       map[string]entity.ShoppingList
	listOrder   []string
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:       make(map[string]entity.User),
		households:  make(map[string]entity.Household),
		members:     make(map[string]map[string]entity.HouseholdMember),
		ingredients: make(map[string]entity.Ingredient),
		recipes:     make(map[string]entity.Recipe),
		mealTypes:   make(map[string]entity.MealType),
		plans:       make(map[string]entity.MealPlan),
		pantry:      make(map[string]entity.PantryItem),
		lists:       make(map[string]entity.ShoppingList),
	}
}

// ── Users ─────────────────────────────────────────────────────────────────────

// UserRepository implementa repository.UserRepository.
type UserRepository struct{ s *Store }

var _ repository.UserRepository = (*UserRepository)(nil)

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepository { return &UserRepository{s} }

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// ── Households ────────────────────────────────────────────────────────────────

// HouseholdRepository implementa repository.HouseholdRepository.
type HouseholdRepository struct{ s *Store }

var _ repository.HouseholdRepository = (*HouseholdRepository)(nil)

// Households devuelve el repositorio de hogares.
func (s *Store) Households() *HouseholdRepository { return &HouseholdRepository{s} }

func (r *HouseholdRepository) Create(_ context.Context, h *entity.Household) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *h
	stored.Role = ""
	r.s.households[h.ID] = stored
	r.s.members[h.ID] = map[string]entity.HouseholdMember{
		h.OwnerID: {HouseholdID: h.ID, UserID: h.OwnerID, Role: entity.HouseholdRoleOwner, CreatedAt: h.CreatedAt},
	}
	return nil
}

func (r *HouseholdRepository) GetByID(_ context.Context, id string) (*entity.Household, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	h, ok := r.s.households[id]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (r *HouseholdRepository) ListByUser(_ context.Context, userID string) ([]*entity.Household, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Household
	for id, ms := range r.s.members {
		m, ok := ms[userID]
		if !ok {
			continue
		}
		h := r.s.households[id]
		h.Role = m.Role
		out = append(out, &h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *HouseholdRepository) ListAll(_ context.Context) ([]*entity.Household, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Household, 0, len(r.s.households))
	for _, h := range r.s.households {
		h := h
		out = append(out, &h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *HouseholdRepository) UpsertMember(_ context.Context, m *entity.HouseholdMember) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ms, ok := r.s.members[m.HouseholdID]
	if !ok {
		return domain.ErrNotFound
	}
	if prev, ok := ms[m.UserID]; ok {
		prev.Role = m.Role
		ms[m.UserID] = prev
		return nil
	}
	ms[m.UserID] = entity.HouseholdMember{HouseholdID: m.HouseholdID, UserID: m.UserID, Role: m.Role, CreatedAt: m.CreatedAt}
	return nil
}

func (r *HouseholdRepository) ListMembers(_ context.Context, householdID string) ([]*entity.HouseholdMember, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.HouseholdMember
	for _, m := range r.s.members[householdID] {
		m := m
		if u, ok := r.s.users[m.UserID]; ok {
			m.Name, m.Email = u.Name, u.Email
		}
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *HouseholdRepository) MemberRole(_ context.Context, householdID, userID string) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.members[householdID][userID].Role, nil
}

// ── Ingredients ───────────────────────────────────────────────────────────────

// IngredientRepository implementa repository.IngredientRepository.
type IngredientRepository struct{ s *Store }

var _ repository.IngredientRepository = (*IngredientRepository)(nil)

// Ingredients devuelve el repositorio de ingredientes.
func (s *Store) Ingredients() *IngredientRepository { return &IngredientRepository{s} }

func (r *IngredientRepository) Create(_ context.Context, i *entity.Ingredient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.ingredients {
		if other.NameKey == i.NameKey {
			return domain.ErrDuplicate
		}
	}
	r.s.ingredients[i.ID] = *i
	return nil
}

func (r *IngredientRepository) GetByID(_ context.Context, id string) (*entity.Ingredient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i, ok := r.s.ingredients[id]
	if !ok {
		return nil, nil
	}
	return &i, nil
}

func (r *IngredientRepository) GetByNameKey(_ context.Context, key string) (*entity.Ingredient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, i := range r.s.ingredients {
		if i.NameKey == key {
			i := i
			return &i, nil
		}
	}
	return nil, nil
}

func (r *IngredientRepository) GetMany(_ context.Context, ids []string) (map[string]*entity.Ingredient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]*entity.Ingredient, len(ids))
	for _, id := range ids {
		if i, ok := r.s.ingredients[id]; ok {
			i := i
			out[id] = &i
		}
	}
	return out, nil
}

func (r *IngredientRepository) Search(_ context.Context, query string) ([]*entity.Ingredient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Ingredient
	for _, i := range r.s.ingredients {
		if strings.Contains(i.NameKey, query) {
			i := i
			out = append(out, &i)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

func (r *IngredientRepository) Update(_ context.Context, i *entity.Ingredient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.ingredients[i.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.ingredients[i.ID] = *i
	return nil
}

func (r *IngredientRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.ingredients[id]; !ok {
		return domain.ErrNotFound
	}
	for _, rec := range r.s.recipes {
		for _, l := range rec.Ingredients {
			if l.IngredientID == id {
				return domain.ErrInUse
			}
		}
	}
	for _, p := range r.s.pantry {
		if p.IngredientID == id {
			return domain.ErrInUse
		}
	}
	delete(r.s.ingredients, id)
	return nil
}

// ── Recipes ───────────────────────────────────────────────────────────────────

// RecipeRepository implementa repository.RecipeRepository.
type RecipeRepository struct{ s *Store }

var _ repository.RecipeRepository = (*RecipeRepository)(nil)

// Recipes devuelve el repositorio de recetas.
func (s *Store) Recipes() *RecipeRepository { return &RecipeRepository{s} }

func copyRecipe(r entity.Recipe) entity.Recipe {
	r.Ingredients = append([]entity.RecipeIngredient(nil), r.Ingredients...)
	return r
}

func (r *RecipeRepository) Create(_ context.Context, rec *entity.Recipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.recipes[rec.ID] = copyRecipe(*rec)
	return nil
}

func (r *RecipeRepository) GetByID(_ context.Context, id string) (*entity.Recipe, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.recipes[id]
	if !ok {
		return nil, nil
	}
	rec = copyRecipe(rec)
	return &rec, nil
}

func (r *RecipeRepository) GetManyWithIngredients(_ context.Context, ids []string) (map[string]*entity.Recipe, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]*entity.Recipe, len(ids))
	for _, id := range ids {
		if rec, ok := r.s.recipes[id]; ok {
			rec = copyRecipe(rec)
			out[id] = &rec
		}
	}
	return out, nil
}

func (r *RecipeRepository) Search(_ context.Context, f repository.RecipeFilter) ([]*entity.Recipe, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	q := strings.ToLower(f.Query)
	var all []*entity.Recipe
	for _, rec := range r.s.recipes {
		if rec.HouseholdID != f.HouseholdID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(rec.Name), q) && !strings.Contains(strings.ToLower(rec.Description), q) {
			continue
		}
		rec := rec
		rec.Ingredients = nil
		all = append(all, &rec)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := len(all)
	if f.Offset >= total {
		return []*entity.Recipe{}, total, nil
	}
	end := total
	if f.Limit > 0 && f.Offset+f.Limit < total {
		end = f.Offset + f.Limit
	}
	return all[f.Offset:end], total, nil
}

func (r *RecipeRepository) Update(_ context.Context, rec *entity.Recipe, replaceIngredients bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.recipes[rec.ID]
	if !ok {
		return domain.ErrNotFound
	}
	next := copyRecipe(*rec)
	if !replaceIngredients {
		next.Ingredients = prev.Ingredients
	}
	r.s.recipes[rec.ID] = next
	return nil
}

func (r *RecipeRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.recipes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.recipes, id)
	return nil
}

// ── Meal types ────────────────────────────────────────────────────────────────

// MealTypeRepository implementa repository.MealTypeRepository.
type MealTypeRepository struct{ s *Store }

var _ repository.MealTypeRepository = (*MealTypeRepository)(nil)

// MealTypes devuelve el repositorio de tipos de comida.
func (s *Store) MealTypes() *MealTypeRepository { return &MealTypeRepository{s} }

func (r *MealTypeRepository) nameTaken(householdID, name, exceptID string) bool {
	for _, mt := range r.s.mealTypes {
		if mt.HouseholdID == householdID && mt.ID != exceptID && strings.EqualFold(mt.Name, name) {
			return true
		}
	}
	return false
}

func (r *MealTypeRepository) Create(_ context.Context, mt *entity.MealType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(mt.HouseholdID, mt.Name, "") {
		return domain.ErrDuplicate
	}
	r.s.mealTypes[mt.ID] = *mt
	return nil
}

func (r *MealTypeRepository) CreateIfAbsent(_ context.Context, mt *entity.MealType) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(mt.HouseholdID, mt.Name, "") {
		return false, nil
	}
	r.s.mealTypes[mt.ID] = *mt
	return true, nil
}

func (r *MealTypeRepository) GetByID(_ context.Context, id string) (*entity.MealType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	mt, ok := r.s.mealTypes[id]
	if !ok {
		return nil, nil
	}
	return &mt, nil
}

func (r *MealTypeRepository) ListByHousehold(_ context.Context, householdID string) ([]*entity.MealType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.MealType
	for _, mt := range r.s.mealTypes {
		if mt.HouseholdID == householdID {
			mt := mt
			out = append(out, &mt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *MealTypeRepository) MaxOrder(_ context.Context, householdID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	highest := 0
	for _, mt := range r.s.mealTypes {
		if mt.HouseholdID == householdID && mt.Order > highest {
			highest = mt.Order
		}
	}
	return highest, nil
}

func (r *MealTypeRepository) Update(_ context.Context, mt *entity.MealType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.mealTypes[mt.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.nameTaken(mt.HouseholdID, mt.Name, mt.ID) {
		return domain.ErrDuplicate
	}
	r.s.mealTypes[mt.ID] = *mt
	return nil
}

func (r *MealTypeRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.mealTypes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.mealTypes, id)
	for pid, p := range r.s.plans {
		for i := range p.Items {
			if p.Items[i].MealTypeID == id {
				p.Items[i].MealTypeID = ""
			}
		}
		r.s.plans[pid] = p
	}
	return nil
}

// ── Meal plans ────────────────────────────────────────────────────────────────

// MealPlanRepository implementa repository.MealPlanRepository y mealplan.TxRunner.
type MealPlanRepository struct{ s *Store }

var _ repository.MealPlanRepository = (*MealPlanRepository)(nil)

// MealPlans devuelve el repositorio de planes.
func (s *Store) MealPlans() *MealPlanRepository { return &MealPlanRepository{s} }

// RunMealPlans ejecuta fn con el repositorio de planes (sin aislamiento transaccional).
func (r *MealPlanRepository) RunMealPlans(_ context.Context, fn func(plans repository.MealPlanRepository) error) error {
	return fn(r)
}

func copyPlan(p entity.MealPlan) entity.MealPlan {
	p.Items = append([]entity.MealPlanItem(nil), p.Items...)
	return p
}

func (r *MealPlanRepository) withRecipeNames(p entity.MealPlan) entity.MealPlan {
	p = copyPlan(p)
	for i := range p.Items {
		if rec, ok := r.s.recipes[p.Items[i].RecipeID]; ok {
			p.Items[i].RecipeName = rec.Name
		}
	}
	return p
}

func (r *MealPlanRepository) Create(_ context.Context, p *entity.MealPlan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.plans {
		if other.HouseholdID == p.HouseholdID && other.WeekStartDate.Equal(p.WeekStartDate) {
			return domain.ErrDuplicate
		}
	}
	r.s.plans[p.ID] = copyPlan(*p)
	return nil
}

func (r *MealPlanRepository) GetByID(_ context.Context, id string) (*entity.MealPlan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.plans[id]
	if !ok {
		return nil, nil
	}
	p = r.withRecipeNames(p)
	return &p, nil
}

func (r *MealPlanRepository) GetByHouseholdAndWeek(_ context.Context, householdID string, weekStart time.Time) (*entity.MealPlan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.plans {
		if p.HouseholdID == householdID && week.DateOnly(p.WeekStartDate).Equal(week.DateOnly(weekStart)) {
			p = r.withRecipeNames(p)
			return &p, nil
		}
	}
	return nil, nil
}

func (r *MealPlanRepository) UpdateHeader(_ context.Context, p *entity.MealPlan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.plans[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	prev.Name, prev.Notes, prev.UpdatedAt = p.Name, p.Notes, p.UpdatedAt
	r.s.plans[p.ID] = prev
	return nil
}

func (r *MealPlanRepository) ReplaceItems(_ context.Context, p *entity.MealPlan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.plans[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	prev.Items = append([]entity.MealPlanItem(nil), p.Items...)
	r.s.plans[p.ID] = prev
	return nil
}

func (r *MealPlanRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.plans[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.plans, id)
	for lid, l := range r.s.lists {
		if l.MealPlanID == id {
			l.MealPlanID = ""
			r.s.lists[lid] = l
		}
	}
	return nil
}

// ── Pantry ────────────────────────────────────────────────────────────────────

// PantryRepository implementa repository.PantryRepository.
type PantryRepository struct{ s *Store }

var _ repository.PantryRepository = (*PantryRepository)(nil)

// Pantry devuelve el repositorio de despensa.
func (s *Store) Pantry() *PantryRepository { return &PantryRepository{s} }

func (r *PantryRepository) withNames(p entity.PantryItem) entity.PantryItem {
	if ing, ok := r.s.ingredients[p.IngredientID]; ok {
		p.IngredientName, p.DefaultUnit = ing.Name, ing.DefaultUnit
	}
	return p
}

func (r *PantryRepository) Create(_ context.Context, p *entity.PantryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.pantry[p.ID] = *p
	return nil
}

func (r *PantryRepository) GetByID(_ context.Context, id string) (*entity.PantryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.pantry[id]
	if !ok {
		return nil, nil
	}
	p = r.withNames(p)
	return &p, nil
}

func (r *PantryRepository) Search(_ context.Context, f repository.PantryFilter) ([]*entity.PantryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.PantryItem
	for _, p := range r.s.pantry {
		if p.HouseholdID != f.HouseholdID {
			continue
		}
		if f.IngredientID != "" && p.IngredientID != f.IngredientID {
			continue
		}
		if f.ExpiresBefore != nil && (p.ExpiresAt == nil || p.ExpiresAt.After(*f.ExpiresBefore)) {
			continue
		}
		if f.ExpiresAfter != nil && (p.ExpiresAt == nil || p.ExpiresAt.Before(*f.ExpiresAfter)) {
			continue
		}
		if f.HasQuantity != nil && p.Quantity.GreaterThan(decimal.Zero) != *f.HasQuantity {
			continue
		}
		p = r.withNames(p)
		out = append(out, &p)
	}
	sortPantry(out)
	return out, nil
}

// sortPantry sin vencimiento al final, luego por vencimiento y por ID.
func sortPantry(items []*entity.PantryItem) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.ExpiresAt == nil && b.ExpiresAt != nil:
			return false
		case a.ExpiresAt != nil && b.ExpiresAt == nil:
			return true
		case a.ExpiresAt != nil && b.ExpiresAt != nil && !a.ExpiresAt.Equal(*b.ExpiresAt):
			return a.ExpiresAt.Before(*b.ExpiresAt)
		}
		return a.ID < b.ID
	})
}

func (r *PantryRepository) Update(_ context.Context, p *entity.PantryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.pantry[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.pantry[p.ID] = *p
	return nil
}

func (r *PantryRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.pantry[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.pantry, id)
	return nil
}

func (r *PantryRepository) ListEligible(_ context.Context, householdID string, asOf time.Time) ([]*entity.PantryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	day := week.DateOnly(asOf)
	var out []*entity.PantryItem
	for _, p := range r.s.pantry {
		if p.HouseholdID != householdID {
			continue
		}
		if p.ExpiresAt != nil && week.DateOnly(*p.ExpiresAt).Before(day) {
			continue
		}
		p := p
		out = append(out, &p)
	}
	sortPantry(out)
	return out, nil
}

// ── Shopping lists ────────────────────────────────────────────────────────────

// ShoppingListRepository implementa repository.ShoppingListRepository.
type ShoppingListRepository struct{ s *Store }

var _ repository.ShoppingListRepository = (*ShoppingListRepository)(nil)

// ShoppingLists devuelve el repositorio de listas de compras.
func (s *Store) ShoppingLists() *ShoppingListRepository { return &ShoppingListRepository{s} }

func (r *ShoppingListRepository) Create(_ context.Context, l *entity.ShoppingList) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *l
	stored.Items = append([]entity.ShoppingListItem(nil), l.Items...)
	r.s.lists[l.ID] = stored
	r.s.listOrder = append(r.s.listOrder, l.ID)
	return nil
}

func (r *ShoppingListRepository) GetByID(_ context.Context, id string) (*entity.ShoppingList, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	l, ok := r.s.lists[id]
	if !ok {
		return nil, nil
	}
	l.Items = append([]entity.ShoppingListItem(nil), l.Items...)
	for i := range l.Items {
		if ing, ok := r.s.ingredients[l.Items[i].IngredientID]; ok {
			l.Items[i].IngredientName = ing.Name
		}
	}
	return &l, nil
}

func (r *ShoppingListRepository) ListByHousehold(_ context.Context, householdID string, limit, offset int) ([]*entity.ShoppingList, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var all []*entity.ShoppingList
	for i := len(r.s.listOrder) - 1; i >= 0; i-- {
		l := r.s.lists[r.s.listOrder[i]]
		if l.HouseholdID != householdID {
			continue
		}
		l.Items = nil
		all = append(all, &l)
	}
	if offset >= len(all) {
		return []*entity.ShoppingList{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

// Count devuelve cuántas listas hay guardadas.
func (r *ShoppingListRepository) Count() int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.lists)
}
