package domain

import (
	"sort"
	"time"
)

// ReportDateLayout é o formato usado pela Steam e pelo cache: YYYY/MM/DD
const ReportDateLayout = "2006/01/02"

// ReportDate identifica um dia de relatório. A ordem lexicográfica é a ordem cronológica.
type ReportDate string

// ParseReportDate converte a data para meia-noite UTC do dia correspondente
func ParseReportDate(value string) (time.Time, error) {
	return time.Parse(ReportDateLayout, value)
}

// FormatReportDate formata um instante como ReportDate usando o dia em UTC
func FormatReportDate(t time.Time) ReportDate {
	return ReportDate(t.UTC().Format(ReportDateLayout))
}

func (d ReportDate) String() string {
	return string(d)
}

// Time retorna o dia como meia-noite UTC
func (d ReportDate) Time() (time.Time, error) {
	return ParseReportDate(string(d))
}

// SortReportDates ordena as datas em ordem crescente
func SortReportDates(dates []ReportDate) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i] < dates[j]
	})
}

// UniqueReportDates remove datas repetidas mantendo a primeira ocorrência
func UniqueReportDates(dates []ReportDate) []ReportDate {
	seen := make(map[ReportDate]struct{}, len(dates))
	unique := make([]ReportDate, 0, len(dates))

	for _, date := range dates {
		if date == "" {
			continue
		}
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		unique = append(unique, date)
	}

	return unique
}
