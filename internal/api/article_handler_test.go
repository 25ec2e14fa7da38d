package api

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/scholarly/article-api/internal/domain"
	"github.com/scholarly/article-api/internal/mocks"
	"github.com/scholarly/article-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// articleHandlerFixture wires a handler to the real article service over
// in-memory stores, so validation and ownership checks run end to end.
type articleHandlerFixture struct {
	handler      *ArticleHandler
	userStore    *mocks.MockUserStore
	articleStore *mocks.MockArticleStore
	owner        *domain.User
}

func newArticleHandlerFixture(t *testing.T) *articleHandlerFixture {
	t.Helper()
	userStore := mocks.NewMockUserStore()
	articleStore := mocks.NewMockArticleStore()

	owner := fixtureUser(t)
	userStore.Users[owner.Username] = owner

	svc := service.NewArticleService(articleStore, userStore, slog.Default())
	return &articleHandlerFixture{
		handler:      NewArticleHandler(svc, NewErrorMapper(false), slog.Default()),
		userStore:    userStore,
		articleStore: articleStore,
		owner:        owner,
	}
}

func (f *articleHandlerFixture) addArticle(t *testing.T, title string, keywords []string) *domain.Article {
	t.Helper()
	article, err := domain.NewArticle(
		title,
		[]string{"Vaswani"},
		"2017-06-12",
		keywords,
		"An abstract.",
		"NeurIPS",
		"10.48550/arXiv.1706.03762",
		"11",
		f.owner.ID,
	)
	require.NoError(t, err)
	f.articleStore.Articles[article.ID] = article
	return article
}

func createArticlePayload(userID uuid.UUID, pages string) string {
	return fmt.Sprintf(`{
		"title": "Attention Is All You Need",
		"authors": ["Vaswani", "Shazeer"],
		"publication_date": "2017-06-12",
		"keywords": ["transformers", "attention"],
		"abstract": "We propose a new architecture.",
		"journal": "NeurIPS",
		"doi": "10.48550/arXiv.1706.03762",
		"pages": %s,
		"user_id": "%s"
	}`, pages, userID)
}

func TestArticleCreate(t *testing.T) {
	t.Parallel()

	t.Run("numeric pages normalized to string", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)

		req := postJSON("/articles", createArticlePayload(f.owner.ID, "42"))
		rec := httptest.NewRecorder()
		f.handler.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
		article := data["article"].(map[string]interface{})
		assert.Equal(t, "42", article["pages"])
		assert.Equal(t,
			[]interface{}{"transformers", "attention"},
			article["keywords"])
	})

	t.Run("string pages kept verbatim", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)

		req := postJSON("/articles", createArticlePayload(f.owner.ID, `"123-145"`))
		rec := httptest.NewRecorder()
		f.handler.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
		article := data["article"].(map[string]interface{})
		assert.Equal(t, "123-145", article["pages"])
	})

	t.Run("missing fields reported together", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)

		req := postJSON("/articles", `{"title": "Only a title"}`)
		rec := httptest.NewRecorder()
		f.handler.Create(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		message := decodeEnvelope(t, rec)["message"].(string)
		assert.Contains(t, message, "Missing required fields")
		assert.Contains(t, message, "authors")
		assert.Contains(t, message, "user_id")
	})

	t.Run("authors must be an array of strings", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)

		payload := fmt.Sprintf(`{
			"title": "T",
			"authors": "Vaswani",
			"publication_date": "2017-06-12",
			"keywords": ["k"],
			"abstract": "A",
			"journal": "J",
			"doi": "10.1/x",
			"user_id": "%s"
		}`, f.owner.ID)
		req := postJSON("/articles", payload)
		rec := httptest.NewRecorder()
		f.handler.Create(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec)["message"], "authors")
	})

	t.Run("unknown owner", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)

		req := postJSON("/articles", createArticlePayload(uuid.New(), "42"))
		rec := httptest.NewRecorder()
		f.handler.Create(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", decodeEnvelope(t, rec)["message"])
	})
}

func TestArticleGet(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)
		article := f.addArticle(t, "Attention Is All You Need", []string{"transformers"})

		req := withChiParam(
			httptest.NewRequest(http.MethodGet, "/articles/"+article.ID.String(), nil),
			"id", article.ID.String())
		rec := httptest.NewRecorder()
		f.handler.Get(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
		got := data["article"].(map[string]interface{})
		assert.Equal(t, article.ID.String(), got["id"])
	})

	t.Run("unknown article", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)

		id := uuid.New().String()
		req := withChiParam(httptest.NewRequest(http.MethodGet, "/articles/"+id, nil), "id", id)
		rec := httptest.NewRecorder()
		f.handler.Get(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Article not found", decodeEnvelope(t, rec)["message"])
	})
}

func TestArticleList(t *testing.T) {
	t.Parallel()

	t.Run("empty catalog yields empty array", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)

		rec := httptest.NewRecorder()
		f.handler.List(rec, httptest.NewRequest(http.MethodGet, "/articles", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
		articles, ok := data["articles"].([]interface{})
		require.True(t, ok, "articles must be a JSON array, not null")
		assert.Empty(t, articles)
	})

	t.Run("returns all articles", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)
		f.addArticle(t, "First", []string{"a"})
		f.addArticle(t, "Second", []string{"b"})

		rec := httptest.NewRecorder()
		f.handler.List(rec, httptest.NewRequest(http.MethodGet, "/articles", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
		assert.Len(t, data["articles"], 2)
	})
}

func TestArticleSearch(t *testing.T) {
	t.Parallel()

	searchRequest := func(userID, query, searchType string) *http.Request {
		target := "/articles/search/" + userID + "?query=" + query
		if searchType != "" {
			target += "&type=" + searchType
		}
		return withChiParam(httptest.NewRequest(http.MethodGet, target, nil), "user_id", userID)
	}

	t.Run("title match", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)
		f.addArticle(t, "Attention Is All You Need", []string{"transformers"})
		f.addArticle(t, "Deep Residual Learning", []string{"resnets"})

		rec := httptest.NewRecorder()
		f.handler.Search(rec, searchRequest(f.owner.ID.String(), "attention", "title"))

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
		assert.Len(t, data["articles"], 1)
	})

	t.Run("type defaults to title", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)
		f.addArticle(t, "Attention Is All You Need", []string{"transformers"})

		rec := httptest.NewRecorder()
		f.handler.Search(rec, searchRequest(f.owner.ID.String(), "attention", ""))

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
		assert.Len(t, data["articles"], 1)
	})

	t.Run("empty query", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)

		rec := httptest.NewRecorder()
		f.handler.Search(rec, searchRequest(f.owner.ID.String(), "", "title"))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec)["message"], "query")
	})

	t.Run("unrecognized type", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)

		rec := httptest.NewRecorder()
		f.handler.Search(rec, searchRequest(f.owner.ID.String(), "attention", "abstract"))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec)["message"], "must be one of")
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)

		rec := httptest.NewRecorder()
		f.handler.Search(rec, searchRequest(uuid.New().String(), "attention", "title"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestArticleListByUser(t *testing.T) {
	t.Parallel()

	t.Run("only the owner's articles", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)
		f.addArticle(t, "Mine", []string{"a"})

		other := fixtureUser(t)
		other.Username = "grace@example.com"
		f.userStore.Users[other.Username] = other

		req := withChiParam(
			httptest.NewRequest(http.MethodGet, "/articles/user/"+other.ID.String(), nil),
			"user_id", other.ID.String())
		rec := httptest.NewRecorder()
		f.handler.ListByUser(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
		articles, ok := data["articles"].([]interface{})
		require.True(t, ok)
		assert.Empty(t, articles)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)

		id := uuid.New().String()
		req := withChiParam(httptest.NewRequest(http.MethodGet, "/articles/user/"+id, nil), "user_id", id)
		rec := httptest.NewRecorder()
		f.handler.ListByUser(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestArticleUpdate(t *testing.T) {
	t.Parallel()

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)
		article := f.addArticle(t, "Old Title", []string{"transformers"})

		req := httptest.NewRequest(http.MethodPut, "/articles/"+article.ID.String(),
			bytes.NewBufferString(`{"title": "New Title"}`))
		req = withChiParam(req, "id", article.ID.String())
		rec := httptest.NewRecorder()
		f.handler.Update(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
		got := data["article"].(map[string]interface{})
		assert.Equal(t, "New Title", got["title"])
		assert.Equal(t, "NeurIPS", got["journal"])
	})

	t.Run("numeric pages on update", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)
		article := f.addArticle(t, "Title", []string{"transformers"})

		req := httptest.NewRequest(http.MethodPut, "/articles/"+article.ID.String(),
			bytes.NewBufferString(`{"pages": 99}`))
		req = withChiParam(req, "id", article.ID.String())
		rec := httptest.NewRecorder()
		f.handler.Update(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
		got := data["article"].(map[string]interface{})
		assert.Equal(t, "99", got["pages"])
	})

	t.Run("malformed publication date", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)
		article := f.addArticle(t, "Title", []string{"transformers"})

		req := httptest.NewRequest(http.MethodPut, "/articles/"+article.ID.String(),
			bytes.NewBufferString(`{"publication_date": "June 2017"}`))
		req = withChiParam(req, "id", article.ID.String())
		rec := httptest.NewRecorder()
		f.handler.Update(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown article", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)

		id := uuid.New().String()
		req := httptest.NewRequest(http.MethodPut, "/articles/"+id,
			bytes.NewBufferString(`{"title": "New"}`))
		req = withChiParam(req, "id", id)
		rec := httptest.NewRecorder()
		f.handler.Update(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestArticleDelete(t *testing.T) {
	t.Parallel()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)
		article := f.addArticle(t, "Title", []string{"transformers"})

		req := withChiParam(
			httptest.NewRequest(http.MethodDelete, "/articles/"+article.ID.String(), nil),
			"id", article.ID.String())
		rec := httptest.NewRecorder()
		f.handler.Delete(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, f.articleStore.Articles, article.ID)
	})

	t.Run("unknown article", func(t *testing.T) {
		t.Parallel()
		f := newArticleHandlerFixture(t)

		id := uuid.New().String()
		req := withChiParam(httptest.NewRequest(http.MethodDelete, "/articles/"+id, nil), "id", id)
		rec := httptest.NewRecorder()
		f.handler.Delete(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
