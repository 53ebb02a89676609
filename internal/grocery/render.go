package grocery

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/recipeai/backend/internal/emoji"
	"github.com/recipeai/backend/internal/model"
)

// documentTemplate is the self-contained printable page: meal plan overview
// (when present), grouped checklist, and an embedded print trigger. The only
// interactive element is the button invoking the browser's print dialog.
const documentTemplate = `<!DOCTYPE html><html><head><meta charset="UTF-8"/><title>Grocery List</title>
<style>*{box-sizing:border-box;margin:0;padding:0}body{font-family:'DM Sans',sans-serif;background:#f5f9f0;color:#1b3a1f;padding:32px;max-width:900px;margin:0 auto}
.hdr{text-align:center;margin-bottom:28px;padding-bottom:18px;border-bottom:3px solid #2e7d32}
.ttl{font-size:34px;color:#2e7d32;margin-bottom:4px}
.sub{font-size:13px;color:#7a9e7e}
.days{display:grid;grid-template-columns:repeat(7,1fr);gap:5px;margin-bottom:26px}
.day{border:1.5px solid #d4e8c2;border-radius:9px;padding:7px;background:#fff}
.dn{font-size:10px;font-weight:700;color:#2e7d32;text-transform:uppercase;margin-bottom:4px}
.meal{font-size:9.5px;color:#3d6b42;margin-bottom:2px}.ml{font-weight:700;color:#e6a817}
.sec-ttl{font-size:19px;color:#2e7d32;margin:0 0 14px}
.cat{margin-bottom:18px}
.cat-hd{font-size:11px;font-weight:700;color:#e6a817;text-transform:uppercase;letter-spacing:.6px;padding-bottom:5px;border-bottom:1.5px solid #d4e8c2;margin:0 0 9px}
.grid{display:grid;grid-template-columns:repeat(3,1fr);gap:7px}
.item{display:flex;align-items:center;gap:9px;background:#fff;border:1.5px solid #d4e8c2;border-radius:10px;padding:9px 11px}
.em{font-size:22px}.iname{font-size:12px;font-weight:600;color:#1b3a1f}.iamt{font-size:10px;color:#7a9e7e}
.cb{width:14px;height:14px;border:1.5px solid #2e7d32;border-radius:4px;margin-left:auto;flex-shrink:0}
.footer{margin-top:28px;text-align:center;font-size:11px;color:#7a9e7e;border-top:1px solid #d4e8c2;padding-top:14px}
@media print{.noprint{display:none}}</style></head><body>
<div class="hdr"><div style="font-size:38px;margin-bottom:8px">🛒</div>
<div class="ttl">Weekly Grocery List</div>
<div class="sub">{{.Date}}</div></div>
{{if .Days}}<div class="sec-ttl">📅 Meal Plan Overview</div><div class="days">{{range .Days}}<div class="day"><div class="dn">{{.Short}}</div>{{range .Meals}}<div class="meal"><span class="ml">{{.Slot}}:</span> {{.Dish}}</div>{{end}}</div>{{end}}</div>{{end}}
<div class="sec-ttl">🛍️ Shopping List ({{.Count}} items)</div>
{{range .Groups}}<div class="cat"><div class="cat-hd">{{.Category}}</div><div class="grid">{{range .Items}}<div class="item"><div class="em">{{.Emoji}}</div><div><div class="iname">{{.Name}}</div>{{if .Amount}}<div class="iamt">{{.Amount}}</div>{{end}}</div><div class="cb"></div></div>{{end}}</div></div>{{end}}
<div class="footer">🌿 Happy cooking! • RecipeAI</div>
<div class="noprint" style="text-align:center;margin-top:20px"><button onclick="window.print()" style="padding:12px 28px;background:#2e7d32;color:#fff;border:none;border-radius:10px;font-size:14px;cursor:pointer;font-weight:700">🖨️ Print / Save as PDF</button></div>
</body></html>`

var docTmpl = template.Must(template.New("grocery").Parse(documentTemplate))

type docMeal struct {
	Slot string
	Dish string
}

type docDay struct {
	Short string
	Meals []docMeal
}

type docItem struct {
	Emoji  string
	Name   string
	Amount string
}

type docGroup struct {
	Category string
	Items    []docItem
}

type docData struct {
	Date   string
	Days   []docDay
	Count  int
	Groups []docGroup
}

// RenderDocument writes the printable grocery document. The plan may be nil,
// in which case the overview section is omitted. Days the plan does not cover
// are skipped; missing meal slots render as a dash.
func RenderDocument(w io.Writer, plan model.MealPlan, items []model.GroceryItem) error {
	data := docData{
		Date:  time.Now().Format("Monday, January 2, 2006"),
		Count: len(items),
	}

	for _, day := range model.Days {
		meals, ok := plan[day]
		if !ok {
			continue
		}
		d := docDay{Short: day[:3]}
		for _, slot := range model.MealSlots {
			dish := meals[slot]
			if dish == "" {
				dish = "—"
			}
			d.Meals = append(d.Meals, docMeal{Slot: slot[:1], Dish: dish})
		}
		data.Days = append(data.Days, d)
	}

	for _, group := range GroupByCategory(items) {
		g := docGroup{Category: group.Category}
		for _, item := range group.Items {
			g.Items = append(g.Items, docItem{
				Emoji:  emoji.For(item.Name),
				Name:   item.Name,
				Amount: item.Amount,
			})
		}
		data.Groups = append(data.Groups, g)
	}

	if err := docTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render grocery document: %w", err)
	}
	return nil
}
