package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weekly-savings/backend/internal/httputil"
)

func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsGoals)
		r.GET("", co.GetGoals)
		r.OPTIONS("/regenerate", OptionsRegenerate)
		r.POST("/regenerate", co.RegenerateGoals)
	}
	{
		r.OPTIONS("/:id", co.OptionsGoalDetail)
		r.GET("/:id", co.GetGoal)
		r.OPTIONS("/:id/save", co.OptionsGoalAction)
		r.POST("/:id/save", co.SaveGoal)
		r.OPTIONS("/:id/postpone", co.OptionsGoalAction)
		r.POST("/:id/postpone", co.PostponeGoal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			dataset	path	string	true	"Name of the dataset"
// @Router			/v1/datasets/{dataset}/goals [options]
func OptionsGoals(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			dataset	path	string	true	"Name of the dataset"
// @Router			/v1/datasets/{dataset}/goals/regenerate [options]
func OptionsRegenerate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// goalExists checks that the goal of the request exists.
//
// If it does not, the error is written as response.
func (co Controller) goalExists(c *gin.Context) bool {
	var uri URIGoalID
	err := c.ShouldBindUri(&uri)
	if err == nil {
		_, err = co.t.GetGoal(c.Request.Context(), dataset(c), uri.ID)
	}

	if err != nil {
		c.JSON(status(err), httpError{
			Message: err.Error(),
		})
		return false
	}

	return true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		string	true	"ID of the goal"
// @Router			/v1/datasets/{dataset}/goals/{id} [options]
func (co Controller) OptionsGoalDetail(c *gin.Context) {
	if co.goalExists(c) {
		httputil.OptionsGet(c)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		string	true	"ID of the goal"
// @Router			/v1/datasets/{dataset}/goals/{id}/save [options]
// @Router			/v1/datasets/{dataset}/goals/{id}/postpone [options]
func (co Controller) OptionsGoalAction(c *gin.Context) {
	if co.goalExists(c) {
		httputil.OptionsPost(c)
	}
}

// @Summary		Get goals
// @Description	Returns the savings goals of the dataset in the order they were generated in
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalListResponse
// @Failure		400		{object}	GoalListResponse
// @Failure		500		{object}	GoalListResponse
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			week	query		string	false	"Goals of the week of this day, in YYYY-MM-DD format"
// @Param			expense	query		string	false	"Filter by expense ID"
// @Param			status	query		string	false	"Filter by status"
// @Param			name	query		string	false	"Filter by expense name. Supports glob patterns like 'car*'"
// @Router			/v1/datasets/{dataset}/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	var query GoalQueryFilter

	if err := c.ShouldBindQuery(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, GoalListResponse{
			Error: &s,
		})
		return
	}

	setFields := httputil.SetFields(c.Request.URL.Query(), query)

	filter, err := query.filter(setFields)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &s,
		})
		return
	}

	goals, err := co.t.ListGoals(c.Request.Context(), dataset(c), filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: newGoals(c, goals)})
}

// @Summary		Get goal
// @Description	Returns a specific savings goal
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		string	true	"ID of the goal"
// @Router			/v1/datasets/{dataset}/goals/{id} [get]
func (co Controller) GetGoal(c *gin.Context) {
	var uri URIGoalID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	goal, err := co.t.GetGoal(c.Request.Context(), dataset(c), uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Save goal
// @Description	Marks a pending goal as saved and adds its amount to the balance of a debit card
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			dataset	path		string			true	"Name of the dataset"
// @Param			id		path		string			true	"ID of the goal"
// @Param			card	body		CardSelection	false	"The debit card the savings are put on"
// @Router			/v1/datasets/{dataset}/goals/{id}/save [post]
func (co Controller) SaveGoal(c *gin.Context) {
	var uri URIGoalID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	cardID, err := bindCardSelection(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	goal, err := co.t.SaveGoal(c.Request.Context(), dataset(c), uri.ID, cardID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Postpone goal
// @Description	Postpones a pending goal. Its amount is spread over the later pending goals of the same payment.
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			dataset	path		string	true	"Name of the dataset"
// @Param			id		path		string	true	"ID of the goal"
// @Router			/v1/datasets/{dataset}/goals/{id}/postpone [post]
func (co Controller) PostponeGoal(c *gin.Context) {
	var uri URIGoalID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	goal, err := co.t.PostponeGoal(c.Request.Context(), dataset(c), uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Regenerate goals
// @Description	Recomputes the savings goals of the dataset. Saved, spent and postponed goals are kept.
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalListResponse
// @Failure		400		{object}	GoalListResponse
// @Failure		500		{object}	GoalListResponse
// @Param			dataset	path		string	true	"Name of the dataset"
// @Router			/v1/datasets/{dataset}/goals/regenerate [post]
func (co Controller) RegenerateGoals(c *gin.Context) {
	goals, err := co.t.Regenerate(c.Request.Context(), dataset(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: newGoals(c, goals)})
}
