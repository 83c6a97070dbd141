package ghapi_test

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octofork/pkg/domain/model"
	"github.com/m-mizutani/octofork/pkg/domain/types"
	"github.com/m-mizutani/octofork/pkg/infra/ghapi"
)

type item struct {
	Name string `json:"name"`
}

func namesJSON(names ...string) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf(`{"name":%q}`, name)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func collect[T any](t *testing.T, seq iter.Seq2[T, error]) ([]T, error) {
	t.Helper()
	var items []T
	for v, err := range seq {
		if err != nil {
			return items, err
		}
		items = append(items, v)
	}
	return items, nil
}

func TestPaginate(t *testing.T) {
	ctx := context.Background()

	t.Run("single page without Link header", func(t *testing.T) {
		fake := newFakeGitHub(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, namesJSON("a", "b", "c"))
		})
		client := fake.client(t)

		items, err := collect(t, ghapi.Paginate[item](ctx, client, "token x", fake.URL+"/items?page=1"))
		gt.NoError(t, err)
		gt.A(t, items).Length(3)
		gt.V(t, items[0].Name).Equal("a")
		gt.V(t, items[2].Name).Equal("c")
		gt.A(t, fake.Requests()).Length(1)
	})

	t.Run("follows next link exactly", func(t *testing.T) {
		var fake *fakeGitHub
		fake = newFakeGitHub(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Query().Get("page") {
			case "1":
				w.Header().Set("Link", fmt.Sprintf(`<%s/items?page=2&per_page=2&cursor=abc>; rel="next", <%s/items?page=2&per_page=2&cursor=abc>; rel="last"`, fake.URL, fake.URL))
				writeJSON(w, http.StatusOK, namesJSON("a", "b"))
			case "2":
				w.Header().Set("Link", fmt.Sprintf(`<%s/items?page=1&per_page=2>; rel="prev"`, fake.URL))
				writeJSON(w, http.StatusOK, namesJSON("c"))
			default:
				writeJSON(w, http.StatusNotFound, `{"message":"Not Found"}`)
			}
		})
		client := fake.client(t)

		items, err := collect(t, ghapi.Paginate[item](ctx, client, "token x", fake.URL+"/items?page=1&per_page=2"))
		gt.NoError(t, err)
		gt.A(t, items).Length(3)
		gt.V(t, items[0].Name).Equal("a")
		gt.V(t, items[1].Name).Equal("b")
		gt.V(t, items[2].Name).Equal("c")

		reqs := fake.Requests()
		gt.A(t, reqs).Length(2)
		gt.V(t, reqs[0].URL).Equal(fake.URL + "/items?page=1&per_page=2")
		gt.V(t, reqs[1].URL).Equal(fake.URL + "/items?page=2&per_page=2&cursor=abc")
		gt.V(t, reqs[1].Authorization).Equal("token x")
	})

	t.Run("empty page with next link is followed", func(t *testing.T) {
		var fake *fakeGitHub
		fake = newFakeGitHub(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("page") == "1" {
				w.Header().Set("Link", fmt.Sprintf(`<%s/items?page=2>; rel="next"`, fake.URL))
				writeJSON(w, http.StatusOK, "[]")
				return
			}
			writeJSON(w, http.StatusOK, namesJSON("z"))
		})
		client := fake.client(t)

		items, err := collect(t, ghapi.Paginate[item](ctx, client, "", fake.URL+"/items?page=1"))
		gt.NoError(t, err)
		gt.A(t, items).Length(1)
		gt.V(t, items[0].Name).Equal("z")
		gt.A(t, fake.Requests()).Length(2)
	})

	t.Run("nothing is fetched before iteration", func(t *testing.T) {
		fake := newFakeGitHub(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, namesJSON("a"))
		})
		client := fake.client(t)

		_ = ghapi.Paginate[item](ctx, client, "", fake.URL+"/items")
		gt.A(t, fake.Requests()).Length(0)
	})

	t.Run("early break stops fetching", func(t *testing.T) {
		var fake *fakeGitHub
		fake = newFakeGitHub(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Link", fmt.Sprintf(`<%s/items?page=2>; rel="next"`, fake.URL))
			writeJSON(w, http.StatusOK, namesJSON("a", "b"))
		})
		client := fake.client(t)

		var got []string
		for v, err := range ghapi.Paginate[item](ctx, client, "", fake.URL+"/items?page=1") {
			gt.NoError(t, err)
			got = append(got, v.Name)
			break
		}
		gt.A(t, got).Length(1)
		gt.A(t, fake.Requests()).Length(1)
	})

	t.Run("error on later page ends sequence", func(t *testing.T) {
		var fake *fakeGitHub
		fake = newFakeGitHub(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("page") == "1" {
				w.Header().Set("Link", fmt.Sprintf(`<%s/items?page=2>; rel="next"`, fake.URL))
				writeJSON(w, http.StatusOK, namesJSON("a"))
				return
			}
			writeJSON(w, http.StatusInternalServerError, `{"message":"Server Error"}`)
		})
		client := fake.client(t)

		var names []string
		var errs []error
		for v, err := range ghapi.Paginate[item](ctx, client, "", fake.URL+"/items?page=1") {
			if err != nil {
				errs = append(errs, err)
				continue
			}
			names = append(names, v.Name)
		}
		gt.A(t, names).Length(1)
		gt.A(t, errs).Length(1)
		gt.V(t, ghapi.StatusCode(errs[0])).Equal(http.StatusInternalServerError)
		gt.A(t, fake.Requests()).Length(2)
	})

	t.Run("error on first page", func(t *testing.T) {
		fake := newFakeGitHub(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, `{"message":"Bad credentials"}`)
		})
		client := fake.client(t)

		items, err := collect(t, ghapi.Paginate[item](ctx, client, "token bad", fake.URL+"/items"))
		gt.Error(t, err)
		gt.A(t, items).Length(0)
		gt.V(t, ghapi.StatusCode(err)).Equal(http.StatusUnauthorized)
	})

	t.Run("next link to another host is rejected", func(t *testing.T) {
		fake := newFakeGitHub(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Link", `<https://attacker.example.com/items?page=2>; rel="next"`)
			writeJSON(w, http.StatusOK, namesJSON("a"))
		})
		client := fake.client(t)

		items, err := collect(t, ghapi.Paginate[item](ctx, client, "token x", fake.URL+"/items?page=1"))
		gt.Error(t, err)
		gt.A(t, items).Length(1)
		gt.A(t, fake.Requests()).Length(1)
	})

	t.Run("empty page linking to itself ends with error", func(t *testing.T) {
		var fake *fakeGitHub
		fake = newFakeGitHub(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Link", fmt.Sprintf(`<%s/items?page=1>; rel="next"`, fake.URL))
			writeJSON(w, http.StatusOK, "[]")
		})
		client := fake.client(t)

		items, err := collect(t, ghapi.Paginate[item](ctx, client, "", fake.URL+"/items?page=1"))
		gt.Error(t, err)
		gt.A(t, items).Length(0)
		gt.A(t, fake.Requests()).Length(1)
	})

	t.Run("next links going back to an earlier page end with error", func(t *testing.T) {
		var fake *fakeGitHub
		fake = newFakeGitHub(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("page") == "1" {
				w.Header().Set("Link", fmt.Sprintf(`<%s/items?page=2>; rel="next"`, fake.URL))
				writeJSON(w, http.StatusOK, namesJSON("a"))
				return
			}
			w.Header().Set("Link", fmt.Sprintf(`<%s/items?page=1>; rel="next"`, fake.URL))
			writeJSON(w, http.StatusOK, namesJSON("b"))
		})
		client := fake.client(t)

		items, err := collect(t, ghapi.Paginate[item](ctx, client, "", fake.URL+"/items?page=1"))
		gt.Error(t, err)
		gt.A(t, items).Length(2)
		gt.A(t, fake.Requests()).Length(2)
	})

	t.Run("credential is sent to the API host only", func(t *testing.T) {
		api := newFakeGitHub(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, "[]")
		})
		other := newFakeGitHub(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, namesJSON("a"))
		})
		client := api.client(t)

		items, err := collect(t, ghapi.Paginate[item](ctx, client, "token x", other.URL+"/items"))
		gt.NoError(t, err)
		gt.A(t, items).Length(1)

		reqs := other.Requests()
		gt.A(t, reqs).Length(1)
		gt.V(t, reqs[0].Authorization).Equal("")
	})

	t.Run("second iteration is rejected", func(t *testing.T) {
		fake := newFakeGitHub(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, namesJSON("a"))
		})
		client := fake.client(t)

		seq := ghapi.Paginate[item](ctx, client, "", fake.URL+"/items")
		items, err := collect(t, seq)
		gt.NoError(t, err)
		gt.A(t, items).Length(1)

		_, err = collect(t, seq)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrSequenceConsumed))
		gt.A(t, fake.Requests()).Length(1)
	})

	t.Run("malformed page body", func(t *testing.T) {
		fake := newFakeGitHub(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"not":"a list"}`)
		})
		client := fake.client(t)

		_, err := collect(t, ghapi.Paginate[item](ctx, client, "", fake.URL+"/items"))
		gt.Error(t, err)
	})
}

func TestListUserRepos(t *testing.T) {
	fake := newFakeGitHub(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, "["+repoJSON+"]")
	})
	client := fake.client(t)

	repos, err := collect[*model.Repository](t, client.ListUserRepos(context.Background(), "12345", 2, 50))
	gt.NoError(t, err)
	gt.A(t, repos).Length(1)
	gt.V(t, repos[0].GetFullName()).Equal("jdoe/foo")

	reqs := fake.Requests()
	gt.A(t, reqs).Length(1)
	gt.V(t, reqs[0].URL).Equal(fake.URL + "/user/repos?type=public&sort=full_name&page=2&per_page=50")
	gt.V(t, reqs[0].Authorization).Equal("12345")
}
