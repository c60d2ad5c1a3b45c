package omf

// decodeAlias decodes an ALIAS record: a loop of (counted alias, counted
// substitute) string pairs.
func decodeAlias(c *cursor) (Record, error) {
	var pairs []AliasPair
	for !c.end() {
		alias, err := c.nextStr()
		if err != nil {
			return nil, err
		}
		substitute, err := c.nextStr()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, AliasPair{Alias: alias, Substitute: substitute})
	}
	return ALIAS{Aliases: pairs}, nil
}
