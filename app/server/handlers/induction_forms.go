package handlers

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"society-cms/app/server/models"
)

// InductionFormSubmit 公开提交。设置项为 "false" 时表单关闭，未设置视为开放
func (a *App) InductionFormSubmit(c echo.Context) error {
	setting, err := a.st.GetSettingByKey(c.Request().Context(), models.SettingInductionFormVisible)
	if err != nil {
		return a.ise(c, err, "failed to get induction form visibility")
	} else if setting != nil && setting.Value == "false" {
		return a.erMsg(c, http.StatusForbidden, "Induction form is closed")
	}

	return createOne(a, c, "induction form", a.st.CreateInductionForm)
}

func (a *App) InductionFormList(c echo.Context) error {
	return list(a, c, "induction forms", a.st.ListInductionForms)
}

func (a *App) InductionFormGet(c echo.Context) error {
	return getOne(a, c, "induction form", a.st.GetInductionForm)
}

func (a *App) InductionFormUpdate(c echo.Context) error {
	return updateOne(a, c, "induction form", a.st.UpdateInductionForm)
}

func (a *App) InductionFormDelete(c echo.Context) error {
	return deleteOne(a, c, "induction form", a.st.DeleteInductionForm)
}
