package physmem

//go:generate mockgen -destination=../mocks/mock_physmem.go -package=mocks github.com/tp-go-memoria/vmemoria/physmem PhysicalMemory
