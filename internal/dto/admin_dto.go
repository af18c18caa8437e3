package dto

type CatalogStatsResponse struct {
	TotalProducts int                    `json:"total_products"`
	Categories    []CatalogCategoryStats `json:"categories"`
}

type CatalogCategoryStats struct {
	Category                string `json:"category"`
	Products                int    `json:"products"`
	TotalSteps              int    `json:"total_steps"`
	ContextSteps            int    `json:"context_steps"`
	PrimarySteps            int    `json:"primary_steps"`
	GoalSteps               int    `json:"goal_steps"`
	CompletedQualifications int64  `json:"completed_qualifications"`
}

type GetLogsRequest struct {
	Level  string `query:"level"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}
