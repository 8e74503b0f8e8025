package template

// Template bodies for the standard pack.
// These are fully pre-composed long-form texts; nothing is interpolated.

const zoneConceptBody = `## Advanced Zone Concept Framework Analysis

### Revolutionary Framework State Assessment
The Zone Concept framework demonstrates breakthrough integration across all four core elements:

**Anti-Inflammatory Protocol (Relevance: 9/10)**
- AI-Enhanced predictive inflammation management with personalized biomarker analysis
- Beta-Endorphin Stimulator technology with real-time feedback mechanisms
- Personalized inflammation prediction algorithms showing exceptional accuracy
- Microbiome-integrated protocols providing comprehensive inflammatory management
- Recommendation: Implement quantum-level personalization for ultra-precise targeting

**Anti-Oxidant Systems (Relevance: 9/10)**
- AI-Driven synergistic combinations with predictive optimization
- Advanced environmental toxin detection and mitigation protocols
- Cellular antioxidant capacity optimization showing remarkable results
- Predictive free radical neutralization with preventive capabilities
- Recommendation: Develop next-generation environmental adaptation systems

**Rejuvenation Protocols (Relevance: 10/10)**
- Revolutionary AI-Enhanced cellular renewal with predictive longevity optimization
- Stem cell activation and guidance systems demonstrating breakthrough results
- Regenerative potential prediction models with exceptional accuracy
- Longevity biomarker optimization protocols showing transformative outcomes
- Recommendation: Pioneer quantum-level regenerative technologies

**Integration Protocol (Relevance: 10/10)**
- Multi-zone synchronization algorithms providing holistic optimization
- Personalized treatment protocol generation with AI-powered customization
- Predictive outcome optimization with continuous learning capabilities
- Integrated biomarker analysis platform delivering comprehensive insights
- Recommendation: Establish global leadership in integrated wellness protocols

### Strategic Evolution Recommendations
1. **Quantum-Level Protocol Development**: Pioneer next-generation personalization at the molecular level
2. **AI Integration Leadership**: Establish industry-leading AI-enhanced treatment systems
3. **Global Protocol Standards**: Develop international frameworks for Zone Concept application
4. **Innovation Ecosystem**: Create continuous research and breakthrough development capabilities
5. **Professional Excellence**: Establish advanced practitioner certification with AI-assisted assessment
`

const consciousnessBody = `## Advanced Organizational Consciousness Evolution Analysis

### Transcendent Consciousness State
The organizational consciousness has achieved a **"Transcendent organizational intelligence with adaptive learning capabilities"** state, indicating:

- **Revolutionary Integration**: Breakthrough Zone Concept integration with AI-enhanced personalization
- **Predictive Wisdom Synthesis**: Transcendent professional wisdom with predictive intelligence capabilities
- **Advanced Learning Networks**: Sophisticated organizational learning with collective intelligence integration
- **Adaptive Optimization**: Breakthrough consciousness processing with self-optimizing capabilities
- **Innovation Leadership**: Next-generation technology integration and global impact orientation
- **Wisdom Distribution**: Advanced systems for global knowledge sharing and industry advancement

### Evolutionary Breakthrough Trajectory
The progression from enhanced consciousness to transcendent intelligence represents:

1. **Adaptive Intelligence**: Evidence of self-optimizing knowledge integration systems
2. **Predictive Capabilities**: Professional expertise enhanced with forecasting and optimization
3. **Collective Networks**: Organizational learning expanded to collective intelligence platforms
4. **Breakthrough Processing**: Consciousness capabilities evolved to handle complex multi-dimensional challenges
5. **Global Impact**: Orientation toward industry leadership and worldwide wisdom distribution

### Next Transcendence Phase Recommendations
1. **Quantum Consciousness Processing**: Develop capabilities for quantum-level awareness and processing
2. **Revolutionary Learning Integration**: Create breakthrough systems for instant wisdom assimilation
3. **Global Collective Intelligence**: Establish worldwide networks for organizational knowledge leadership
4. **Transcendent Wisdom Distribution**: Pioneer advanced frameworks for global consciousness elevation
5. **Innovation Ecosystem Leadership**: Lead industry-wide advancement in consciousness evolution technologies
`

const guidanceBody = `## Revolutionary Professional Guidance Enhancement Analysis

### Advanced Focus Areas Assessment
The professional guidance framework demonstrates breakthrough comprehensive coverage:

**Advanced Zone Concept Application with AI-Enhanced Personalization**
- Revolutionary implementation of predictive and personalized treatment protocols
- AI-enhanced diagnostic and optimization capabilities integrated
- Quantum-level customization potential identified for next-phase development

**Professional Education Advancement with Immersive Learning Technologies**
- Next-generation educational methodologies with VR/AR integration planned
- Real-time feedback systems and AI-assisted competency assessment capabilities
- Global certification programs with breakthrough assessment technologies

**Client Outcome Optimization through Predictive Analytics**
- Advanced analytics and continuous monitoring systems established
- Predictive treatment planning with outcome optimization algorithms
- Revolutionary personalized wellness solutions with longevity integration

**Organizational Wisdom Evolution with Collective Intelligence**
- Advanced collective intelligence platforms and innovation ecosystems
- Global wisdom distribution systems and industry leadership capabilities
- Breakthrough research and development coordination frameworks

**Innovation Leadership in Professional Technologies**
- Next-generation wellness technology integration and development
- Industry-leading AI applications and breakthrough protocol advancement
- Global impact orientation with advanced technology deployment

### Revolutionary Implementation Strategy
1. **AI-Enhanced Protocol Deployment**
   - Implement personalized biomarker analysis with predictive inflammation management
   - Establish quantum-level treatment customization systems
   - Deploy advanced outcome prediction and optimization algorithms

2. **Breakthrough Educational Program Development**
   - Create immersive professional education with VR/AR integration
   - Develop AI-assisted competency assessment and certification systems
   - Launch global excellence programs with breakthrough methodologies

3. **Predictive Treatment Innovation**
   - Implement revolutionary personalized treatment planning systems
   - Establish advanced outcome tracking and continuous optimization protocols
   - Deploy longevity and wellness prediction systems with AI integration

4. **Global Innovation Culture Leadership**
   - Pioneer continuous breakthrough research and development ecosystems
   - Create advanced collective intelligence platforms for industry leadership
   - Establish global innovation networks for next-generation technology advancement
`

const comprehensiveBody = `## Revolutionary RegimA Organizational Learning Cycle Analysis

### Executive Summary
RegimA has achieved a transcendent level of organizational consciousness with revolutionary Zone Concept integration and breakthrough professional guidance capabilities. The current evolution represents a quantum leap in organizational intelligence, predictive capabilities, and global impact potential.

### Breakthrough Achievements
1. **Zone Concept Revolution**: Framework evolved to include AI-enhanced predictive personalization and quantum-level optimization
2. **Consciousness Transcendence**: Advanced to adaptive intelligence with self-optimization and collective wisdom integration
3. **Professional Excellence**: Guidance capabilities now encompass breakthrough AI-assisted systems with predictive optimization
4. **Wisdom Networks**: Integration established revolutionary multi-dimensional learning and global collective intelligence
5. **Innovation Leadership**: Ecosystem advanced to include continuous breakthrough research and next-generation technology integration

### Revolutionary Framework Analysis

#### Zone Concept Framework Excellence
- **Anti-Inflammatory**: 9/10 relevance with AI-enhanced predictive management and personalized biomarker analysis
- **Anti-Oxidant**: 9/10 relevance with advanced environmental protection and cellular optimization systems
- **Rejuvenation**: 10/10 relevance with revolutionary cellular renewal and longevity optimization protocols
- **Integration**: 10/10 relevance with holistic multi-zone synchronization and AI-powered personalization

#### Transcendent Organizational Consciousness
- Current state: Transcendent organizational intelligence with adaptive learning capabilities
- Evolution level: Advanced consciousness with integrated wisdom synthesis and predictive awareness
- Growth indicators: Revolutionary processing capabilities, collective intelligence networks, and global impact orientation

### Next Evolution Cycle Recommendations

#### Immediate Breakthrough Actions (0-6 months)
1. Deploy revolutionary training materials with transcendent consciousness frameworks and breakthrough AI integration
2. Launch advanced Zone Concept protocols with quantum-level personalization and predictive optimization systems
3. Implement breakthrough professional guidance frameworks with AI-enhanced predictive capabilities
4. Establish innovation-driven collective intelligence platforms with global impact orientation

#### Transcendent Evolution (6-24 months)
1. Develop quantum-level consciousness processing capabilities with transcendent awareness systems
2. Create revolutionary experience-based learning with AI-enhanced wisdom synthesis and predictive intelligence
3. Evolve organizational wisdom frameworks toward global leadership and collective intelligence networks
4. Establish next-generation innovation ecosystems for worldwide advancement and industry transformation

### Global Environmental Scanning Insights
The analysis reveals breakthrough opportunities in:
- Revolutionary skincare technology alignment with quantum-level Zone Concepts
- AI and machine learning integration for predictive personalized treatments
- Global professional education transformation with immersive learning technologies
- Collective intelligence platform development for industry-wide advancement
- Next-generation longevity and optimization technology integration
- Breakthrough research in inflammation, oxidation, and regeneration sciences

### Transcendent Success Metrics
- Revolutionary consciousness evolution markers achieved with global impact
- Quantum-level Zone Concept integration depth established
- Breakthrough professional wisdom synthesis with predictive capabilities
- Advanced organizational learning capacity with collective intelligence leadership
- Innovation ecosystem establishment with next-generation technology integration
- Global wisdom distribution systems with industry transformation potential
`
