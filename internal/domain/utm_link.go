package domain

// UTMRowIndexKey é a coluna sintética com a linha (1-indexada) da planilha
const UTMRowIndexKey = "_rowIndex"

// UTMFirstDataRow é a primeira linha de dados; a linha 1 é o cabeçalho
const UTMFirstDataRow = 2

type UTMLinkAction string

const (
	UTMLinkActionAdd    UTMLinkAction = "add"
	UTMLinkActionUpdate UTMLinkAction = "update"
	UTMLinkActionDelete UTMLinkAction = "delete"
)

type UTMLinkTable struct {
	Headers      []string            `json:"headers"`
	Rows         []map[string]string `json:"rows"`
	UniqueValues map[string][]string `json:"uniqueValues"`
}

type UTMLinkChange struct {
	Action   UTMLinkAction     `json:"action"`
	RowIndex int               `json:"rowIndex"`
	RowData  map[string]string `json:"rowData"`
	Headers  []string          `json:"headers"`
}

// Values ordena os dados da linha conforme os cabeçalhos
func (c *UTMLinkChange) Values() []string {
	values := make([]string, len(c.Headers))
	for i, header := range c.Headers {
		values[i] = c.RowData[header]
	}
	return values
}
