package lower

import "fmt"

type errBadType string

func (e errBadType) Error() string {
	return fmt.Sprintf("unsupported value type ‘%s’; only ‘int’ exists", string(e))
}
