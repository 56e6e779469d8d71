package v1

import (
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchUC domain.SearchUsecase
}

func NewSearchHandler(public *gin.RouterGroup, searchUC domain.SearchUsecase) {
	handler := &SearchHandler{searchUC: searchUC}

	search := public.Group("/search")
	{
		search.GET("/posts", handler.Posts)
		search.GET("/people", handler.People)
	}
}

func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	var skills []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// Posts godoc
// @Summary      Search Posts
// @Description  Search posts by keyword, skills, location and type
// @Tags         search
// @Produce      json
// @Param        keyword   query     string  false  "Keyword over title and description"
// @Param        skills    query     string  false  "Comma-separated skill list"
// @Param        location  query     string  false  "Location"
// @Param        type      query     string  false  "Post type"
// @Success      200  {object}  response.Response
// @Router       /search/posts [get]
func (h *SearchHandler) Posts(c *gin.Context) {
	q := domain.PostSearchQuery{
		Keyword:  c.Query("keyword"),
		Skills:   splitSkills(c.Query("skills")),
		Location: c.Query("location"),
		Type:     c.Query("type"),
	}

	posts, err := h.searchUC.SearchPosts(c.Request.Context(), q)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post search results", posts)
}

// People godoc
// @Summary      Search People
// @Description  Search users by keyword, skills and country
// @Tags         search
// @Produce      json
// @Param        keyword   query     string  false  "Keyword over name and bio"
// @Param        skills    query     string  false  "Comma-separated skill list"
// @Param        location  query     string  false  "Country"
// @Success      200  {object}  response.Response
// @Router       /search/people [get]
func (h *SearchHandler) People(c *gin.Context) {
	q := domain.PersonSearchQuery{
		Keyword:  c.Query("keyword"),
		Skills:   splitSkills(c.Query("skills")),
		Location: c.Query("location"),
	}

	people, err := h.searchUC.SearchPeople(c.Request.Context(), q)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "People search results", people)
}
