package domain

// Period é um atalho de seleção de datas da tela de finanças
type Period string

const (
	PeriodLatest    Period = "latest"
	PeriodYesterday Period = "yesterday"
	PeriodWeek      Period = "week"
	PeriodTwoWeeks  Period = "2weeks"
	PeriodMonth     Period = "month"
	PeriodAll       Period = "all"
	PeriodCustom    Period = "custom"
)

// PeriodLength é a quantidade de datas de cada atalho que ignora a data mais recente
var PeriodLength = map[Period]int{
	PeriodWeek:     7,
	PeriodTwoWeeks: 14,
	PeriodMonth:    31,
}

type PeriodFilter struct {
	Period Period
	From   string // YYYY-MM-DD, apenas para custom
	To     string // YYYY-MM-DD, apenas para custom
}
