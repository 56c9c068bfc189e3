package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"restfulmind/internal/apperrors"
	"restfulmind/internal/models"
)

type mockArticleRepo struct {
	mu     sync.Mutex
	bySlug map[string]*models.Article
	byID   map[string]*models.Article

	created        *models.Article
	lastCategoryID *string
	lastFeatured   *bool
	lastLimit      int
	lastSkip       int
	lastSince      time.Time
	lastPatch      *models.UpdateArticleRequest
	lastNow        time.Time
	views          map[string]int

	published int
	total     int
	viewsSum  int64
}

func newMockArticleRepo() *mockArticleRepo {
	return &mockArticleRepo{
		bySlug: make(map[string]*models.Article),
		byID:   make(map[string]*models.Article),
		views:  make(map[string]int),
	}
}

func (m *mockArticleRepo) add(a *models.Article) {
	m.bySlug[a.Slug] = a
	m.byID[a.ID] = a
}

func (m *mockArticleRepo) Create(_ context.Context, a *models.Article) error {
	m.created = a
	m.add(a)
	return nil
}

func (m *mockArticleRepo) GetPublished(_ context.Context, categoryID *string, featured *bool, limit, skip int) ([]*models.Article, error) {
	m.lastCategoryID = categoryID
	m.lastFeatured = featured
	m.lastLimit = limit
	m.lastSkip = skip
	return nil, nil
}

func (m *mockArticleRepo) GetUpdatedSince(_ context.Context, since time.Time, limit int) ([]*models.Article, error) {
	m.lastSince = since
	m.lastLimit = limit

	var list []*models.Article
	for _, a := range m.byID {
		// Граница включительно, как в SQL: updated_at >= since.
		if a.IsPublished && !a.UpdatedAt.Before(since) {
			list = append(list, a)
		}
	}
	return list, nil
}

func (m *mockArticleRepo) GetAll(_ context.Context, limit int) ([]*models.Article, error) {
	m.lastLimit = limit
	return nil, nil
}

func (m *mockArticleRepo) GetBySlug(_ context.Context, slug string) (*models.Article, error) {
	a, ok := m.bySlug[slug]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockArticleRepo) GetByID(_ context.Context, id string) (*models.Article, error) {
	a, ok := m.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockArticleRepo) IncrementViews(_ context.Context, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bySlug[slug]; !ok {
		return apperrors.ErrNotFound
	}
	m.views[slug]++
	return nil
}

func (m *mockArticleRepo) viewCount(slug string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.views[slug]
}

func (m *mockArticleRepo) Update(_ context.Context, id string, patch *models.UpdateArticleRequest, now time.Time) error {
	a, ok := m.byID[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	m.lastPatch = patch
	m.lastNow = now

	// Частичное обновление: затрагиваются только переданные поля.
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Slug != nil {
		delete(m.bySlug, a.Slug)
		a.Slug = *patch.Slug
		m.bySlug[a.Slug] = a
	}
	if patch.Excerpt != nil {
		a.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		a.Content = *patch.Content
	}
	if patch.CategoryID != nil {
		a.CategoryID = patch.CategoryID
	}
	if patch.IsFeatured != nil {
		a.IsFeatured = *patch.IsFeatured
	}
	if patch.IsPublished != nil {
		a.IsPublished = *patch.IsPublished
	}
	if patch.ReadingTime != nil {
		a.ReadingTime = *patch.ReadingTime
	}
	if patch.WhatsNew != nil {
		a.WhatsNew = patch.WhatsNew
	}
	a.UpdatedAt = now
	return nil
}

func (m *mockArticleRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.bySlug, m.byID[id].Slug)
	delete(m.byID, id)
	return nil
}

func (m *mockArticleRepo) Count(_ context.Context, onlyPublished bool) (int, error) {
	if onlyPublished {
		return m.published, nil
	}
	return m.total, nil
}

func (m *mockArticleRepo) SumViews(_ context.Context) (int64, error) {
	return m.viewsSum, nil
}

type mockCategoryRepo struct {
	bySlug map[string]*models.Category
	byID   map[string]*models.Category

	created *models.Category
	updated *models.Category
	deleted string
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{
		bySlug: make(map[string]*models.Category),
		byID:   make(map[string]*models.Category),
	}
}

func (m *mockCategoryRepo) add(c *models.Category) {
	m.bySlug[c.Slug] = c
	m.byID[c.ID] = c
}

func (m *mockCategoryRepo) GetAll(_ context.Context) ([]*models.Category, error) {
	var list []*models.Category
	for _, c := range m.byID {
		list = append(list, c)
	}
	return list, nil
}

func (m *mockCategoryRepo) GetBySlug(_ context.Context, slug string) (*models.Category, error) {
	c, ok := m.bySlug[slug]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return c, nil
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id string) (*models.Category, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return c, nil
}

func (m *mockCategoryRepo) Create(_ context.Context, c *models.Category) error {
	if _, ok := m.bySlug[c.Slug]; ok {
		return apperrors.ErrSlugTaken
	}
	m.created = c
	m.add(c)
	return nil
}

func (m *mockCategoryRepo) Update(_ context.Context, c *models.Category) error {
	if _, ok := m.byID[c.ID]; !ok {
		return apperrors.ErrNotFound
	}
	m.updated = c
	m.add(c)
	return nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return apperrors.ErrNotFound
	}
	m.deleted = id
	delete(m.bySlug, m.byID[id].Slug)
	delete(m.byID, id)
	return nil
}

func TestGetBySlug_IncrementsViews(t *testing.T) {
	repo := newMockArticleRepo()
	cats := newMockCategoryRepo()
	service := NewArticleService(repo, cats)

	catID := "c1"
	cats.add(&models.Category{ID: catID, Name: "Sleep & Rest", Slug: "sleep-rest"})
	repo.add(&models.Article{ID: "a1", Slug: "how-sleep-affects-mental-health", CategoryID: &catID})

	a, err := service.GetBySlug(context.Background(), "how-sleep-affects-mental-health")
	if err != nil {
		t.Fatalf("ошибка получения статьи: %v", err)
	}
	if repo.views["how-sleep-affects-mental-health"] != 1 {
		t.Fatalf("ожидался один инкремент просмотров, получено %d", repo.views["how-sleep-affects-mental-health"])
	}
	if a.Category == nil || a.Category.Slug != "sleep-rest" {
		t.Fatal("категория не встроена в ответ")
	}
}

func TestGetBySlug_ConcurrentViews(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo, newMockCategoryRepo())

	repo.add(&models.Article{ID: "a1", Slug: "breathing-techniques"})

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			if _, err := service.GetBySlug(context.Background(), "breathing-techniques"); err != nil {
				t.Errorf("ошибка получения статьи: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := repo.viewCount("breathing-techniques"); got != readers {
		t.Fatalf("потеряны инкременты просмотров: ожидалось %d, получено %d", readers, got)
	}
}

func TestGetBySlug_DanglingCategory(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo, newMockCategoryRepo())

	missing := "нет-такой"
	repo.add(&models.Article{ID: "a1", Slug: "orphan", CategoryID: &missing})

	a, err := service.GetBySlug(context.Background(), "orphan")
	if err != nil {
		t.Fatalf("висячая ссылка не должна быть ошибкой: %v", err)
	}
	if a.Category != nil {
		t.Fatal("при висячей ссылке категория должна остаться nil")
	}
}

func TestGetBySlug_NotFound(t *testing.T) {
	service := NewArticleService(newMockArticleRepo(), newMockCategoryRepo())

	_, err := service.GetBySlug(context.Background(), "missing")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("ожидался ErrNotFound, получено %v", err)
	}
}

func TestListPublished_UnknownCategoryIgnored(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo, newMockCategoryRepo())

	_, err := service.ListPublished(context.Background(), models.ArticleFilter{CategorySlug: "no-such-category"})
	if err != nil {
		t.Fatalf("неизвестная категория не должна быть ошибкой: %v", err)
	}
	if repo.lastCategoryID != nil {
		t.Fatal("фильтр по категории должен быть сброшен для неизвестного slug")
	}
}

func TestListPublished_LimitDefaults(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo, newMockCategoryRepo())

	// Лимит больше дефолта пробрасывается как есть.
	if _, err := service.ListPublished(context.Background(), models.ArticleFilter{Limit: 500, Skip: -3}); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if repo.lastLimit != 500 {
		t.Fatalf("явный лимит должен пробрасываться без ограничения: %d", repo.lastLimit)
	}
	if repo.lastSkip != 0 {
		t.Fatalf("отрицательный skip не сброшен: %d", repo.lastSkip)
	}

	// Нулевой и отрицательный лимит подменяются дефолтом.
	if _, err := service.ListPublished(context.Background(), models.ArticleFilter{Limit: 0}); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if repo.lastLimit != defaultArticleLimit {
		t.Fatalf("пустой лимит должен подменяться дефолтом: %d", repo.lastLimit)
	}
}

func TestListWeeklyUpdates_Window(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo, newMockCategoryRepo())

	before := time.Now().UTC().Add(-weeklyWindow)
	if _, err := service.ListWeeklyUpdates(context.Background()); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	after := time.Now().UTC().Add(-weeklyWindow)

	if repo.lastSince.Before(before) || repo.lastSince.After(after) {
		t.Fatalf("граница недели вычислена неверно: %v", repo.lastSince)
	}
	if repo.lastLimit != weeklyLimit {
		t.Fatalf("неверный лимит еженедельной выборки: %d", repo.lastLimit)
	}
}

func TestListWeeklyUpdates_Boundary(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo, newMockCategoryRepo())

	now := time.Now().UTC()
	// Запас в секунду, чтобы граница не зависела от момента вычисления now
	// внутри сервиса.
	repo.add(&models.Article{ID: "a1", Slug: "fresh", IsPublished: true, UpdatedAt: now.Add(-time.Hour)})
	repo.add(&models.Article{ID: "a2", Slug: "edge", IsPublished: true, UpdatedAt: now.Add(-weeklyWindow + time.Second)})
	repo.add(&models.Article{ID: "a3", Slug: "stale", IsPublished: true, UpdatedAt: now.Add(-weeklyWindow - time.Second)})
	repo.add(&models.Article{ID: "a4", Slug: "draft", IsPublished: false, UpdatedAt: now.Add(-time.Hour)})

	list, err := service.ListWeeklyUpdates(context.Background())
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	got := make(map[string]bool, len(list))
	for _, a := range list {
		got[a.Slug] = true
	}
	if !got["fresh"] || !got["edge"] {
		t.Fatalf("статьи внутри недельного окна потеряны: %v", got)
	}
	if got["stale"] {
		t.Fatal("статья старше недели не должна попадать в выборку")
	}
	if got["draft"] {
		t.Fatal("неопубликованная статья не должна попадать в выборку")
	}
}

func TestCreateArticle_SanitizesContent(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo, newMockCategoryRepo())

	req := &models.CreateArticleRequest{
		Title:   "Test",
		Slug:    "test",
		Content: `<p>ok</p><script>alert(1)</script><img src="x.png" alt="x" onerror="boom()">`,
	}
	a, err := service.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("ошибка создания статьи: %v", err)
	}
	if strings.Contains(a.Content, "<script>") || strings.Contains(a.Content, "onerror") {
		t.Fatalf("опасная разметка не вырезана: %q", a.Content)
	}
	if !strings.Contains(a.Content, "<img") || !strings.Contains(a.Content, `src="x.png"`) {
		t.Fatalf("img с src должен сохраниться: %q", a.Content)
	}
}

func TestCreateArticle_Defaults(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo, newMockCategoryRepo())

	a, err := service.Create(context.Background(), &models.CreateArticleRequest{Title: "T", Slug: "t"})
	if err != nil {
		t.Fatalf("ошибка создания статьи: %v", err)
	}
	if !a.IsPublished {
		t.Fatal("статья по умолчанию должна быть опубликована")
	}
	if a.ReadingTime != defaultReadingTime {
		t.Fatalf("reading_time по умолчанию: ожидалось %d, получено %d", defaultReadingTime, a.ReadingTime)
	}
	if a.CategoryID != nil {
		t.Fatal("пустая категория должна давать NULL, а не пустую строку")
	}
}

func TestUpdateArticle_TouchesUpdatedAt(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo, newMockCategoryRepo())

	old := time.Now().UTC().Add(-48 * time.Hour)
	repo.add(&models.Article{ID: "a1", Slug: "t", UpdatedAt: old})

	a, err := service.Update(context.Background(), "a1", &models.UpdateArticleRequest{})
	if err != nil {
		t.Fatalf("ошибка обновления: %v", err)
	}
	if !a.UpdatedAt.After(old) {
		t.Fatal("updated_at должен обновляться даже при пустом patch")
	}
}

func TestUpdateArticle_PreservesUntouchedFields(t *testing.T) {
	repo := newMockArticleRepo()
	service := NewArticleService(repo, newMockCategoryRepo())

	catID := "c1"
	repo.add(&models.Article{
		ID:         "a1",
		Title:      "Mindful Eating",
		Slug:       "mindful-eating",
		Excerpt:    "старый анонс",
		Content:    "<p>тело статьи</p>",
		CategoryID: &catID,
		IsFeatured: true,
	})

	newExcerpt := "новый анонс"
	a, err := service.Update(context.Background(), "a1", &models.UpdateArticleRequest{Excerpt: &newExcerpt})
	if err != nil {
		t.Fatalf("ошибка обновления: %v", err)
	}

	if a.Excerpt != newExcerpt {
		t.Fatalf("переданное поле не применено: %q", a.Excerpt)
	}
	if a.Title != "Mindful Eating" || a.Slug != "mindful-eating" || a.Content != "<p>тело статьи</p>" {
		t.Fatalf("непереданные поля изменены: %+v", a)
	}
	if a.CategoryID == nil || *a.CategoryID != catID {
		t.Fatal("категория не должна меняться без явного patch")
	}
	if !a.IsFeatured {
		t.Fatal("флаг featured не должен сбрасываться без явного patch")
	}
}

func TestUpdateArticle_NotFound(t *testing.T) {
	service := NewArticleService(newMockArticleRepo(), newMockCategoryRepo())

	_, err := service.Update(context.Background(), "missing", &models.UpdateArticleRequest{})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("ожидался ErrNotFound, получено %v", err)
	}
}
