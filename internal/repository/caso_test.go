//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"pipeline-crm-backend/internal/database/models"
	"pipeline-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CasoRepositoryTestSuite tests the CasoRepository
type CasoRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CasoRepository
	contatoRepo   *ContatoRepository
	relRepo       *RelacionamentoRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CasoRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewCasoRepository(suite.baseTestSuite.DB)
	suite.contatoRepo = NewContatoRepository(suite.baseTestSuite.DB)
	suite.relRepo = NewRelacionamentoRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CasoRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CasoRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CasoRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new caso
func (suite *CasoRepositoryTestSuite) TestCreate() {
	caso := suite.factories.Caso.Create()

	err := suite.repo.Create(caso)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, caso.ID)
	suite.NotZero(caso.CreatedAt)
}

// TestGetAllFiltersByCity tests the city filter
func (suite *CasoRepositoryTestSuite) TestGetAllFiltersByCity() {
	suite.NoError(suite.repo.Create(suite.factories.Caso.WithCidade("Campinas")))
	suite.NoError(suite.repo.Create(suite.factories.Caso.WithCidade("Sorocaba")))

	casos, total, err := suite.repo.GetAll("campinas", "", nil, nil, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(casos, 1)
	suite.Equal("Campinas", casos[0].Cidade)
}

// TestGetAllSearchesNameAndFuneraria tests the free-text search
func (suite *CasoRepositoryTestSuite) TestGetAllSearchesNameAndFuneraria() {
	suite.NoError(suite.repo.Create(suite.factories.Caso.WithNome("Antônio Souza")))
	other := suite.factories.Caso.Create()
	other.Funeraria = "Memorial Paulista"
	suite.NoError(suite.repo.Create(other))

	casos, total, err := suite.repo.GetAll("", "souza", nil, nil, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("Antônio Souza", casos[0].Nome)

	casos, total, err = suite.repo.GetAll("", "memorial", nil, nil, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(other.ID, casos[0].ID)
}

// TestGetAllFiltersByDeathDateRange tests the data_obito range filters
func (suite *CasoRepositoryTestSuite) TestGetAllFiltersByDeathDateRange() {
	january := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	march := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	june := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
	suite.NoError(suite.repo.Create(suite.factories.Caso.WithDataObito(january)))
	inRange := suite.factories.Caso.WithDataObito(march)
	suite.NoError(suite.repo.Create(inRange))
	suite.NoError(suite.repo.Create(suite.factories.Caso.WithDataObito(june)))

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)

	casos, total, err := suite.repo.GetAll("", "", &start, &end, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(casos, 1)
	suite.Equal(inRange.ID, casos[0].ID)

	// Open-ended range: only a lower bound
	casos, total, err = suite.repo.GetAll("", "", &start, nil, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(casos, 2)
}

// TestGetWithRelacionamentos tests preloading the linked contatos
func (suite *CasoRepositoryTestSuite) TestGetWithRelacionamentos() {
	caso := suite.factories.Caso.Create()
	suite.NoError(suite.repo.Create(caso))

	contato := suite.factories.Contato.Create()
	suite.NoError(suite.contatoRepo.Create(contato))
	suite.NoError(suite.relRepo.Create(suite.factories.Relacionamento.WithParentesco(caso.ID, contato.ID, "esposa")))

	found, err := suite.repo.GetWithRelacionamentos(caso.ID)

	suite.NoError(err)
	suite.Len(found.Relacionamentos, 1)
	suite.Equal("esposa", found.Relacionamentos[0].TipoParentesco)
	suite.NotNil(found.Relacionamentos[0].Contato)
	suite.Equal(contato.ID, found.Relacionamentos[0].Contato.ID)
}

// TestDeleteCascadesRelacionamentos tests that deleting a caso removes its links
func (suite *CasoRepositoryTestSuite) TestDeleteCascadesRelacionamentos() {
	caso := suite.factories.Caso.Create()
	suite.NoError(suite.repo.Create(caso))

	contato := suite.factories.Contato.Create()
	suite.NoError(suite.contatoRepo.Create(contato))
	suite.NoError(suite.relRepo.Create(suite.factories.Relacionamento.Create(caso.ID, contato.ID)))

	suite.NoError(suite.repo.Delete(caso.ID))

	_, err := suite.repo.GetByID(caso.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	rels, err := suite.relRepo.GetByCasoID(caso.ID)
	suite.NoError(err)
	suite.Empty(rels)

	// The contato itself survives the caso deletion
	_, err = suite.contatoRepo.GetByID(contato.ID)
	suite.NoError(err)
}

// TestGetCities tests the distinct city list
func (suite *CasoRepositoryTestSuite) TestGetCities() {
	suite.NoError(suite.repo.Create(suite.factories.Caso.WithCidade("Sorocaba")))
	suite.NoError(suite.repo.Create(suite.factories.Caso.WithCidade("Campinas")))
	suite.NoError(suite.repo.Create(suite.factories.Caso.WithCidade("Campinas")))
	empty := suite.factories.Caso.Create()
	empty.Cidade = ""
	suite.NoError(suite.repo.Create(empty))

	cities, err := suite.repo.GetCities()

	suite.NoError(err)
	suite.Equal([]string{"Campinas", "Sorocaba"}, cities)
}

// TestCasoRepositoryTestSuite runs the test suite
func TestCasoRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CasoRepositoryTestSuite))
}
