package compose

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/decklab/decksmith/internal/deck"
	"github.com/decklab/decksmith/internal/frame"
	"github.com/decklab/decksmith/internal/plot"
)

// growthLag is the year-over-year offset in quarter columns.
const growthLag = 4

// shipModeOrder fixes the delivery-speed ordering of the ship modes.
var shipModeOrder = []string{"Same Day", "First Class", "Second Class", "Standard Class"}

// PivotTables holds the three derived tables of one pivot slide.
type PivotTables struct {
	// Values is the quarterly sales pivot with a totals row, trimmed to the
	// quarters that also have a growth figure.
	Values *frame.Frame
	// Growth is the year-over-year quarterly growth in percent.
	Growth *frame.Frame
	// Mix is the share of total per pivot value for the trailing
	// same-quarter columns.
	Mix *frame.Frame
}

// BuildPivotTables derives the value, growth, and mix tables for one pivot
// column, optionally restricted by a filter.
func BuildPivotTables(data *frame.Frame, pivot string, filter *Filter) (*PivotTables, error) {
	scoped := data
	if filter != nil {
		var err error
		scoped, err = data.FilterEq(filter.Column, filter.Equals)
		if err != nil {
			return nil, err
		}
		if scoped.Len() == 0 {
			return nil, fmt.Errorf("no rows match %s = %q", filter.Column, filter.Equals)
		}
	}

	grouped, err := scoped.GroupSum([]string{pivot, "Calendar_Quarter"}, "Sales")
	if err != nil {
		return nil, err
	}
	wide, err := grouped.Pivot(pivot, "Calendar_Quarter", "Sales")
	if err != nil {
		return nil, err
	}
	labels, err := wide.Unique(pivot)
	if err != nil {
		return nil, err
	}
	sort.Strings(labels)
	if err := wide.SortByOrder(pivot, labels); err != nil {
		return nil, err
	}

	quarters := wide.Columns()[1:]
	if len(quarters) <= growthLag {
		return nil, fmt.Errorf("pivot %s covers only %d quarters — year-over-year growth needs more than %d", pivot, len(quarters), growthLag)
	}

	// Mix uses the same calendar quarter across years, e.g. every -Q4
	// column, so the shares are seasonally comparable.
	suffix := quarters[len(quarters)-1][len(quarters[len(quarters)-1])-2:]
	var mixCols []string
	for _, q := range quarters {
		if strings.HasSuffix(q, suffix) {
			mixCols = append(mixCols, q)
		}
	}
	mixSel, err := wide.Select(append([]string{pivot}, mixCols...)...)
	if err != nil {
		return nil, err
	}
	mix, err := mixSel.Mix()
	if err != nil {
		return nil, err
	}
	if err := mix.AddTotalsRow("Total"); err != nil {
		return nil, err
	}
	if len(mixCols) > 1 {
		mix = mix.Drop(mixCols[0])
	}

	if err := wide.AddTotalsRow("Total"); err != nil {
		return nil, err
	}
	growth, err := wide.GrowthAcross(growthLag)
	if err != nil {
		return nil, err
	}
	values := wide.Drop(quarters[:growthLag]...)

	return &PivotTables{Values: values, Growth: growth, Mix: mix}, nil
}

// BuildSuperstoreDeck renders the analysis deck for a loaded superstore
// frame following the given slide plan.
func BuildSuperstoreDeck(data *frame.Frame, plan []PlanSlide) (*deck.Presentation, error) {
	prs := deck.New()
	for i, ps := range plan {
		slide := prs.AddSlide()
		var err error
		switch ps.Type {
		case SlideTransition:
			addTransition(slide, ps.Title, ps.Subtitle)
		case SlidePivotSummary, SlidePivotDetail:
			err = buildPivotSlide(slide, data, ps)
		case SlideTopCustomers:
			err = buildTopCustomersSlide(slide, data, ps.Title)
		case SlideShipMode:
			buildShipModeSlide(slide, data, ps.Title)
		default:
			err = fmt.Errorf("unknown slide type %q", ps.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("slide %d (%s): %w", i+1, ps.Title, err)
		}
	}
	return prs, nil
}

func buildPivotSlide(slide *deck.Slide, data *frame.Frame, ps PlanSlide) error {
	tables, err := BuildPivotTables(data, ps.Pivot, ps.Filter)
	if err != nil {
		return err
	}

	addHeader(slide, ps.Title)
	st := compactTable
	addValueTable(slide, tables.Values, "Sales ($)", 0.10, 0.64, st)
	growthTop := st.rowHeight*float64(tables.Values.Len()+3) + 0.64
	addGrowthTable(slide, tables.Growth, "Sales YoY Growth (%)", 0.10, growthTop, st)
	addTrendTable(slide, tables.Values, "12 Quarter", "Trend", 9.90, 0.64, "line", 12, st)
	addTrendTable(slide, tables.Growth, "12 Quarter", "YoY Growth (%)", 9.90, growthTop, "bar", 12, st)
	addPropTable(slide, tables.Mix, "Sales Proportion (%)", 11.30, 0.64, st)

	if ps.Type == SlidePivotSummary {
		categories, series, err := monthlyChartData(data, ps.Pivot)
		if err != nil {
			return err
		}
		chartTop := growthTop + st.rowHeight*float64(tables.Growth.Len()+3)
		addStackedColumnChart(slide, inFrame(0.10, chartTop, 14.50, 4.30), "Monthly Sales", categories, series)
	}
	return nil
}

// monthlyChartData aggregates sales per pivot value per calendar month,
// skipping the first (partial) year. Categories come out chronological and
// every series is aligned to them, with zeros for missing months.
func monthlyChartData(data *frame.Frame, pivot string) ([]string, []chartSeries, error) {
	recent, err := dropFirstYear(data)
	if err != nil {
		return nil, nil, err
	}
	grouped, err := recent.GroupSum([]string{pivot, "Order_Year", "Order_Month", "Calendar_Month"}, "Sales")
	if err != nil {
		return nil, nil, err
	}

	groups, _ := grouped.Strings(pivot)
	years, _ := grouped.Strings("Order_Year")
	months, _ := grouped.Strings("Order_Month")
	labels, _ := grouped.Strings("Calendar_Month")
	sales, _ := grouped.Numbers("Sales")

	type period struct {
		key   int
		label string
	}
	var periods []period
	seen := map[int]bool{}
	cells := map[string]map[int]float64{}
	for i := range groups {
		y, _ := strconv.Atoi(years[i])
		m, _ := strconv.Atoi(months[i])
		key := y*100 + m
		if !seen[key] {
			seen[key] = true
			periods = append(periods, period{key: key, label: labels[i]})
		}
		if cells[groups[i]] == nil {
			cells[groups[i]] = map[int]float64{}
		}
		cells[groups[i]][key] += sales[i]
	}
	sort.Slice(periods, func(a, b int) bool { return periods[a].key < periods[b].key })

	var names []string
	for name := range cells {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]string, len(periods))
	for i, p := range periods {
		categories[i] = p.label
	}
	series := make([]chartSeries, len(names))
	for i, name := range names {
		values := make([]float64, len(periods))
		for j, p := range periods {
			values[j] = cells[name][p.key]
		}
		series[i] = chartSeries{name: name, values: values}
	}
	return categories, series, nil
}

// dropFirstYear filters out the earliest order year, which is only partially
// covered and would skew the recent-window figures.
func dropFirstYear(data *frame.Frame) (*frame.Frame, error) {
	years, err := data.Strings("Order_Year")
	if err != nil {
		return nil, err
	}
	first := ""
	for _, y := range years {
		if first == "" || y < first {
			first = y
		}
	}
	return data.Filter(func(i int) bool { return years[i] != first }), nil
}

// customerProfile is the computed stat block of one top customer.
type customerProfile struct {
	Name           string
	ID             string
	Segment        string
	TotalSales     float64
	FirstMonth     string
	OrderCount     int
	YearlyAverage  float64
	MonthsBetween  float64
	TopProducts    [][2]string
}

const orderDateLayout = "2/1/2006"

// topCustomers ranks customers by recent sales and assembles each leader's
// profile: tenure, order cadence, yearly run rate, and top products.
func topCustomers(data *frame.Frame) ([]customerProfile, error) {
	recent, err := dropFirstYear(data)
	if err != nil {
		return nil, err
	}
	ranked, err := recent.GroupSum([]string{"Customer_Name", "Customer_ID", "Segment"}, "Sales")
	if err != nil {
		return nil, err
	}
	if err := ranked.SortNumbers("Sales", true); err != nil {
		return nil, err
	}
	ranked = ranked.Head(3)

	names, _ := ranked.Strings("Customer_Name")
	ids, _ := ranked.Strings("Customer_ID")
	segments, _ := ranked.Strings("Segment")
	totals, _ := ranked.Numbers("Sales")

	wanted := map[string]bool{}
	for _, name := range names {
		wanted[name] = true
	}

	allNames, _ := data.Strings("Customer_Name")
	allOrders, _ := data.Strings("Order_ID")
	allDates, _ := data.Strings("Order_Date")

	recNames, _ := recent.Strings("Customer_Name")
	recOrders, _ := recent.Strings("Order_ID")
	recYears, _ := recent.Strings("Order_Year")
	recProducts, _ := recent.Strings("Product_Name")
	recSales, _ := recent.Numbers("Sales")

	// First order date and per-order first date over the full history.
	firstDate := map[string]time.Time{}
	orderDate := map[string]map[string]time.Time{}
	for i := range allNames {
		if !wanted[allNames[i]] {
			continue
		}
		d, err := time.Parse(orderDateLayout, allDates[i])
		if err != nil {
			return nil, fmt.Errorf("could not parse order date %q: %w", allDates[i], err)
		}
		if f, ok := firstDate[allNames[i]]; !ok || d.Before(f) {
			firstDate[allNames[i]] = d
		}
		if orderDate[allNames[i]] == nil {
			orderDate[allNames[i]] = map[string]time.Time{}
		}
		if f, ok := orderDate[allNames[i]][allOrders[i]]; !ok || d.Before(f) {
			orderDate[allNames[i]][allOrders[i]] = d
		}
	}

	// Recent-window aggregates.
	orderSeen := map[string]map[string]bool{}
	yearSales := map[string]map[string]float64{}
	productSales := map[string]map[string]float64{}
	for i := range recNames {
		name := recNames[i]
		if !wanted[name] {
			continue
		}
		if orderSeen[name] == nil {
			orderSeen[name] = map[string]bool{}
			yearSales[name] = map[string]float64{}
			productSales[name] = map[string]float64{}
		}
		orderSeen[name][recOrders[i]] = true
		yearSales[name][recYears[i]] += recSales[i]
		productSales[name][recProducts[i]] += recSales[i]
	}

	profiles := make([]customerProfile, len(names))
	for i, name := range names {
		p := customerProfile{
			Name:       name,
			ID:         ids[i],
			Segment:    segments[i],
			TotalSales: totals[i],
			OrderCount: len(orderSeen[name]),
			FirstMonth: firstDate[name].Format("Jan-2006"),
		}

		var sum float64
		for _, s := range yearSales[name] {
			sum += s
		}
		if n := len(yearSales[name]); n > 0 {
			p.YearlyAverage = sum / float64(n)
		}

		var dates []time.Time
		for _, d := range orderDate[name] {
			dates = append(dates, d)
		}
		sort.Slice(dates, func(a, b int) bool { return dates[a].Before(dates[b]) })
		if len(dates) > 1 {
			var days float64
			for j := 1; j < len(dates); j++ {
				days += dates[j].Sub(dates[j-1]).Hours() / 24
			}
			p.MonthsBetween = days / float64(len(dates)-1) / 30
		}

		type product struct {
			name  string
			sales float64
		}
		var products []product
		for pname, s := range productSales[name] {
			products = append(products, product{pname, s})
		}
		sort.Slice(products, func(a, b int) bool {
			if products[a].sales != products[b].sales {
				return products[a].sales > products[b].sales
			}
			return products[a].name < products[b].name
		})
		if len(products) > 4 {
			products = products[:4]
		}
		for _, pr := range products {
			p.TopProducts = append(p.TopProducts, [2]string{pr.name, "  (" + formatAmount(pr.sales) + ")"})
		}
		profiles[i] = p
	}
	return profiles, nil
}

func buildTopCustomersSlide(slide *deck.Slide, data *frame.Frame, title string) error {
	profiles, err := topCustomers(data)
	if err != nil {
		return err
	}

	addHeader(slide, title)
	for i, p := range profiles {
		offset := 2.48 * float64(i)

		ribbon := slide.AddShape(deck.ShapeChevron, inFrame(-0.06, 1.69+offset, 1.07, 0.36))
		ribbon.Fill = &navy
		ribbon.Line = &white
		ribbon.Rotation = 270

		medal := slide.AddShape(deck.ShapeStar7Point, inFrame(0.12, 0.99+offset, 0.70, 0.70))
		medalFill := medalColors[i%len(medalColors)]
		medal.Fill = &medalFill
		medal.Line = &sparkZero
		setText(&medal.Text, []string{strconv.Itoa(i + 1)}, textStyle{
			size: 18, bold: true, color: white,
			align: deck.AlignCenter, anchor: deck.AnchorMiddle,
		})

		addTextBox(slide, 0.91, 1.14+offset, 4.02, 0.40, []string{p.Name},
			textStyle{size: 18, anchor: deck.AnchorMiddle})

		addStatBox(slide, 0.91, 1.60+offset, formatAmount(p.TotalSales), "in the last 3 years")
		pairs := [][2]string{
			{"Customer ID: ", p.ID},
			{"Segment: ", p.Segment},
			{"Customer Since: ", p.FirstMonth},
			{"Number of Orders: ", strconv.Itoa(p.OrderCount)},
		}
		demo := slide.AddTextBox(inFrame(2.75, 1.60+offset, 2.18, 0.91))
		setBulletPairs(&demo.Text, pairs, 12, navy)

		addDivider(slide, 5.13, 1.60+offset, 0, 1.10)
		addStatBox(slide, 5.30, 1.60+offset, formatAmount(p.YearlyAverage), "on average, annually")
		addStatBox(slide, 6.94, 1.60+offset, formatDecimal(p.MonthsBetween), "months between orders")
		addDivider(slide, 8.78, 1.60+offset, 0, 1.10)

		addTextBox(slide, 8.95, 1.54+offset, 2.80, 0.40, []string{"Top Products Purchased"},
			textStyle{size: 18, anchor: deck.AnchorMiddle})
		productsBox := slide.AddTextBox(inFrame(8.95, 1.90+offset, 6.30, 0.85))
		setBulletPairs(&productsBox.Text, p.TopProducts, 11, navy)
	}
	return nil
}

// addStatBox places a big figure with a small caption under it.
func addStatBox(slide *deck.Slide, left, top float64, figure, caption string) {
	addTextBox(slide, left, top, 1.67, 0.64, []string{figure},
		textStyle{size: 32, align: deck.AlignCenter, anchor: deck.AnchorMiddle})
	addTextBox(slide, left, top+0.54, 1.67, 0.30, []string{caption},
		textStyle{size: 10, align: deck.AlignCenter, anchor: deck.AnchorMiddle})
}

// buildShipModeSlide renders the delivery-length boxplot per ship mode. The
// plot is best-effort: placeholder text stands in when rendering fails.
func buildShipModeSlide(slide *deck.Slide, data *frame.Frame, title string) {
	addHeader(slide, title)

	groups, err := shipModeGroups(data)
	if err == nil {
		var png []byte
		png, err = plot.BoxPlot(groups, "", "Delivery Length (in days)", 9, 7)
		if err == nil {
			slide.AddPicture(png, inFrame(0.10, 1.00, 9.00, 7.00))
			return
		}
	}
	addTextBox(slide, 0.30, 1.00, 8.18, 0.57,
		[]string{"The image file was unable to be inserted into the file."},
		textStyle{size: 14})
}

// shipModeGroups collects the delivery length of each distinct recent order,
// grouped by ship mode in delivery-speed order.
func shipModeGroups(data *frame.Frame) ([]plot.Group, error) {
	recent, err := dropFirstYear(data)
	if err != nil {
		return nil, err
	}
	orders, err := recent.Strings("Order_ID")
	if err != nil {
		return nil, err
	}
	modes, err := recent.Strings("Ship_Mode")
	if err != nil {
		return nil, err
	}
	lengths, err := recent.Numbers("Delivery_Length")
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	byMode := map[string][]float64{}
	for i := range orders {
		key := orders[i] + "\x00" + modes[i]
		if seen[key] {
			continue
		}
		seen[key] = true
		byMode[modes[i]] = append(byMode[modes[i]], lengths[i])
	}

	var groups []plot.Group
	for _, mode := range shipModeOrder {
		if vals, ok := byMode[mode]; ok {
			groups = append(groups, plot.Group{Label: mode, Values: vals})
			delete(byMode, mode)
		}
	}
	var rest []string
	for mode := range byMode {
		rest = append(rest, mode)
	}
	sort.Strings(rest)
	for _, mode := range rest {
		groups = append(groups, plot.Group{Label: mode, Values: byMode[mode]})
	}
	return groups, nil
}
