package tagged

const shared = 1

func everywhere() {}
